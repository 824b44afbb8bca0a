package create_booking

import (
	"time"

	createBooking "github.com/zenya-app/Zenya-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string  `json:"serviceId"`
	Start         string  `json:"start"` // ISO 8601
	End           string  `json:"end"`   // ISO 8601
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status,omitempty"` // Пустой статус = confirmed
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	Color         string  `json:"color"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Start:         start,
		End:           end,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		Status:        r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		Status:        resp.Status,
		Color:         resp.Color,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
