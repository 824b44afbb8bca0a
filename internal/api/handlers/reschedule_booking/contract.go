package reschedule_booking

import (
	"context"

	"github.com/zenya-app/Zenya-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
