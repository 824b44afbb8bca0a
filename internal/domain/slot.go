package domain

import (
	"fmt"
	"time"
)

// TimeSlot represents a candidate appointment window within business hours.
// Слоты - производные значения: пересчитываются на каждый запрос доступности
// и никогда не сохраняются.
type TimeSlot struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// Interval returns the time range covered by the slot
func (s *TimeSlot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// SlotID строит детерминированный идентификатор слота по времени его начала.
// Формат: slot-<yyyyMMddHHmm>, что позволяет идемпотентно пересчитывать слоты.
func SlotID(start time.Time) string {
	return fmt.Sprintf("slot-%s", start.Format(SlotIDTimeFormat))
}
