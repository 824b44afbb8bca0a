package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(t *testing.T, startHour, startMin, endHour, endMin int) Interval {
	t.Helper()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    interval(t, 10, 0, 10, 30),
			b:    interval(t, 10, 15, 10, 45),
			want: true,
		},
		{
			name: "b inside a",
			a:    interval(t, 9, 0, 12, 0),
			b:    interval(t, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "a inside b",
			a:    interval(t, 10, 0, 11, 0),
			b:    interval(t, 9, 0, 12, 0),
			want: true,
		},
		{
			name: "identical intervals",
			a:    interval(t, 10, 0, 10, 30),
			b:    interval(t, 10, 0, 10, 30),
			want: true,
		},
		{
			name: "touching end to start is not overlap",
			a:    interval(t, 10, 0, 10, 30),
			b:    interval(t, 10, 30, 11, 0),
			want: false,
		},
		{
			name: "touching start to end is not overlap",
			a:    interval(t, 10, 30, 11, 0),
			b:    interval(t, 10, 0, 10, 30),
			want: false,
		},
		{
			name: "disjoint",
			a:    interval(t, 9, 0, 9, 30),
			b:    interval(t, 15, 0, 15, 30),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	i := interval(t, 10, 0, 10, 30)

	assert.True(t, i.Contains(i.Start))
	assert.True(t, i.Contains(i.Start.Add(15*time.Minute)))
	// Правая граница полуоткрытая
	assert.False(t, i.Contains(i.End))
	assert.False(t, i.Contains(i.Start.Add(-time.Minute)))
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(t, 10, 0, 10, 30).IsValid())
	assert.False(t, interval(t, 10, 30, 10, 0).IsValid())
	// Пустой интервал невалиден
	assert.False(t, interval(t, 10, 0, 10, 0).IsValid())
}
