package get_current_user

import (
	"errors"
	"net/http"

	"github.com/zenya-app/Zenya-BookingService/internal/api/handlers"
	"github.com/zenya-app/Zenya-BookingService/internal/service/auth"
)

const (
	msgNotFound = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
// Возвращает "текущего" пользователя демо-окружения: первого
// администратора коллекции, а без администраторов - первого пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - No users in collection")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed to get current user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /auth/me - Current user retrieved successfully: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
