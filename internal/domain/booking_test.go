package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.IsValid(), "status %s", status)
	}

	assert.False(t, BookingStatus("unknown").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_IsActive(t *testing.T) {
	// Отменённые бронирования не блокируют слоты, все остальные статусы блокируют
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
}

func TestSlotID(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "slot-202603100930", SlotID(start))
}
