package get_available_slots

import (
	"context"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetAll получает все бронирования; занятость слота проверяется
	// по абсолютным интервалам, поэтому фильтрация по дате не нужна
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
