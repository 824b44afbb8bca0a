package domain

// Business hours are fixed in this version: the booking window is always
// 09:00-17:00 local time. Making them configurable is a known followup
// that would also require per-day schedules.
const (
	BusinessDayOpenHour  = 9  // 09:00
	BusinessDayCloseHour = 17 // 17:00
)

// SlotStepMinutes шаг генерации слотов.
// Шаг всегда 30 минут независимо от длительности услуги: длительность
// влияет только на отображаемый маркер окончания, но не на сетку слотов.
const SlotStepMinutes = 30

// Time format constants
const (
	DateFormat       = "2006-01-02"   // YYYY-MM-DD
	SlotIDTimeFormat = "200601021504" // yyyyMMddHHmm
)
