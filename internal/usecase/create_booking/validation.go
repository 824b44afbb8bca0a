package create_booking

import (
	"fmt"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все обязательные поля проверяются здесь, на границе создания записи,
// чтобы в хранилище не попадали частично заполненные бронирования.
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	return nil
}

// resolveStatus возвращает статус нового бронирования.
// Пустой статус означает confirmed; непустой должен быть одним из
// четырёх допустимых значений.
func resolveStatus(raw string) (domain.BookingStatus, error) {
	if raw == "" {
		return domain.StatusConfirmed, nil
	}

	status := domain.BookingStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	return status, nil
}
