package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	bookingRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/bookings"
	"github.com/zenya-app/Zenya-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Вся коллекция, включая отменённые: List(ctx, &ListBookingsRequest{})
// - Бронирования услуги: указать ServiceID
// - Бронирования за период: StartDate и EndDate
// - Только подтвержденные: указать Status = "confirmed"
// - Без отменённых: ActiveOnly = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, serviceID=%v, status=%v, activeOnly=%v",
		req.ServiceID, req.Status, req.ActiveOnly)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования.
// Любой допустимый статус принимается независимо от текущего:
// автомата переходов между статусами нет, completed → pending разрешён.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, status)
	return nil
}

// Reschedule переносит бронирование на новый временной диапазон.
// Доступность нового диапазона не перепроверяется - вызывающий обязан
// свериться с генератором слотов.
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) error {
	s.logger.Info("Reschedule: booking id=%s to %s - %s", id, req.Start, req.End)

	if req.Start.IsZero() || req.End.IsZero() {
		s.logger.Warn("Reschedule: missing start or end for booking id=%s", id)
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		s.logger.Warn("Reschedule: invalid time range for booking id=%s", id)
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	if err := s.bookingRepo.Reschedule(ctx, id, req.Start, req.End); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reschedule: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Reschedule: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: successfully rescheduled booking id=%s", id)
	return nil
}

// Cancel отменяет бронирование.
// Отмена - это переход статуса, а не удаление: запись остаётся в коллекции.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{
		Status: string(domain.StatusCancelled),
	})
}

// Delete физически удаляет бронирование.
// UI эту операцию не использует, но возможность хранилища сохранена.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
