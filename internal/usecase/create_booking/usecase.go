package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	servicesRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/services"
)

// UUIDGenerator генератор идентификаторов на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность слота здесь НЕ проверяется: вызывающий обязан свериться
// с генератором слотов до вызова. Два пересекающихся бронирования
// будут созданы успешно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, start=%s, customer=%s",
		req.ServiceID, req.Start.Format(time.RFC3339), req.CustomerName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем статус (по умолчанию confirmed)
	status, err := resolveStatus(req.Status)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Получаем услугу из каталога
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Длительность диапазона должна совпадать с длительностью услуги,
	// но это не контракт хранилища: расхождение только логируется
	if requested := req.End.Sub(req.Start); requested != time.Duration(service.DurationMinutes)*time.Minute {
		uc.logger.Warn("CreateBooking: requested range %s differs from service duration %dm",
			requested, service.DurationMinutes)
	}

	// 4. Создаем бронирование с денормализацией данных услуги
	booking := &domain.Booking{
		ID:        uc.idGenerator.NewID(),
		ServiceID: req.ServiceID,
		Start:     req.Start,
		End:       req.End,
		// Денормализация данных услуги
		ServiceName: service.Name,
		Color:       service.Color,
		// Данные клиента
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Status:        status,
		CreatedAt:     uc.timeProvider.Now(),
	}

	// 5. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:            created.ID,
		ServiceID:     created.ServiceID,
		ServiceName:   created.ServiceName,
		Start:         created.Start,
		End:           created.End,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		Notes:         created.Notes,
		Status:        string(created.Status),
		Color:         created.Color,
		CreatedAt:     created.CreatedAt,
	}, nil
}
