package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zenya-app/Zenya-BookingService/internal/api/handlers"
	"github.com/zenya-app/Zenya-BookingService/internal/service/catalog"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgNotFound         = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем serviceId из URL
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /services/{id} - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id} - Service retrieved successfully: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
