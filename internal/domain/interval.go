package domain

import "time"

// Interval represents a half-open time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуоткрытых интервалов.
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - начало другого СТРОГО раньше конца первого
//
// Используем строгие неравенства, чтобы граничные случаи не считались пересечением:
// - [10:00, 10:30) и [10:30, 11:00) → НЕТ пересечения (граничат)
// - [10:00, 10:30) и [10:15, 10:45) → ЕСТЬ пересечение (10:15-10:30)
//
// Проверка покрывает все три случая занятости слота: слот начинается внутри
// бронирования, слот заканчивается внутри бронирования, слот целиком
// содержит бронирование.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains returns true if the instant t falls inside the interval
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// IsValid returns true if the interval has positive length
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}
