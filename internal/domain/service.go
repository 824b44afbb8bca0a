package domain

// Service represents a bookable service from the catalog.
// Reference data: created at catalog load, never mutated by the booking flow.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Color           string  `json:"color"`
}
