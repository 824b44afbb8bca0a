package get_available_slots

import (
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

// generateTimeSlots генерирует последовательность слотов на рабочий день.
// Слоты идут от открытия (09:00) до закрытия (17:00) с фиксированным шагом
// 30 минут и полностью покрывают рабочее окно без пересечений.
//
// Шаг НЕ зависит от длительности услуги: конец слота всегда
// начало + 30 минут. Слот помечается недоступным, если он пересекается
// хотя бы с одним неотменённым бронированием.
func generateTimeSlots(date time.Time, bookings []*domain.Booking) []domain.TimeSlot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessDayOpenHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessDayCloseHour, 0, 0, 0, date.Location())

	slots := make([]domain.TimeSlot, 0, 16)

	currentSlot := dayStart
	for currentSlot.Before(dayEnd) {
		slotEnd := currentSlot.Add(domain.SlotStepMinutes * time.Minute)
		slot := domain.Interval{Start: currentSlot, End: slotEnd}

		slots = append(slots, domain.TimeSlot{
			ID:        domain.SlotID(currentSlot),
			Start:     currentSlot,
			End:       slotEnd,
			Available: countOverlappingBookings(slot, bookings) == 0,
		})

		currentSlot = slotEnd
	}

	return slots
}

// countOverlappingBookings подсчитывает количество неотменённых бронирований,
// пересекающихся с указанным слотом.
// Граничащие интервалы пересечением не считаются:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
func countOverlappingBookings(slot domain.Interval, bookings []*domain.Booking) int {
	count := 0

	for _, booking := range bookings {
		// Отменённые бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}

		if slot.Overlaps(booking.Interval()) {
			count++
		}
	}

	return count
}
