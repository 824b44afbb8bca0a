package models

import (
	"errors"
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RescheduleRequest запрос на перенос бронирования
type RescheduleRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ListBookingsRequest запрос на получение списка бронирований.
// Без фильтров возвращается вся коллекция, включая отменённые записи.
type ListBookingsRequest struct {
	ServiceID  *string    `json:"serviceId,omitempty"`  // Фильтр по услуге (опционально)
	Status     *string    `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	StartDate  *time.Time `json:"startDate,omitempty"`  // Начало периода (опционально)
	EndDate    *time.Time `json:"endDate,omitempty"`    // Конец периода (опционально)
	ActiveOnly bool       `json:"activeOnly,omitempty"` // Исключить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ServiceID:  r.ServiceID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ActiveOnly: r.ActiveOnly,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	Start         string  `json:"start"` // ISO 8601
	End           string  `json:"end"`   // ISO 8601
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	Color         string  `json:"color"`
	CreatedAt     string  `json:"createdAt"` // ISO 8601
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		Start:         b.Start.Format(time.RFC3339),
		End:           b.End.Format(time.RFC3339),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		Status:        string(b.Status),
		Color:         b.Color,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
