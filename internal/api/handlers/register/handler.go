package register

import (
	"errors"
	"net/http"

	"github.com/zenya-app/Zenya-BookingService/internal/api/handlers"
	"github.com/zenya-app/Zenya-BookingService/internal/service/auth"
	"github.com/zenya-app/Zenya-BookingService/internal/service/auth/models"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidCredentials = "некорректные учетные данные"
	msgEmailTaken         = "email уже зарегистрирован"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем тело запроса
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/register - Invalid credentials: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email already taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registration successful: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
