package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValid returns true if the status is one of the four known values
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents a service booking in the system
type Booking struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`

	// Denormalized service data, snapshotted at creation time
	ServiceName string `json:"serviceName"`
	Color       string `json:"color"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`

	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsActive returns true if the booking still occupies its time range.
// Pending, confirmed and completed bookings all block their slot;
// only cancelled ones free it.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Interval returns the time range occupied by the booking
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// BookingsFilter фильтр для выборки бронирований.
// Пустой фильтр возвращает всю коллекцию, включая отменённые записи.
type BookingsFilter struct {
	ServiceID  *string        // Фильтр по услуге (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
	StartDate  *time.Time     // Начало периода (опционально)
	EndDate    *time.Time     // Конец периода (опционально)
	ActiveOnly bool           // Исключить отменённые бронирования
}
