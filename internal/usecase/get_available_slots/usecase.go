package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	servicesRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/services"
)

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Слоты - производные значения: пересчитываются на каждый вызов,
// побочных эффектов нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога.
	// Неизвестная услуга - не ошибка: возвращаем пустой список слотов.
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found, returning empty slot list", req.ServiceID)
			return &Response{
				Date:      req.Date,
				ServiceID: req.ServiceID,
				Slots:     []domain.TimeSlot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем все бронирования
	bookings, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты рабочего дня и размечаем доступность
	slots := generateTimeSlots(req.Date, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                   req.Date,
		ServiceID:              req.ServiceID,
		ServiceDurationMinutes: service.DurationMinutes,
		Slots:                  slots,
	}, nil
}
