package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/service/bookings/models"
	"github.com/zenya-app/Zenya-BookingService/pkg/ptr"
)

// ToListRequest собирает запрос сервиса из query параметров.
// Все фильтры опциональны: serviceId, status, from, to (YYYY-MM-DD),
// activeOnly. Без фильтров возвращается вся коллекция, включая
// отменённые бронирования.
func ToListRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if serviceID := query.Get("serviceId"); serviceID != "" {
		req.ServiceID = ptr.Ptr(serviceID)
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(date)
	}

	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		req.EndDate = ptr.Ptr(date)
	}

	if activeOnly := query.Get("activeOnly"); activeOnly != "" {
		parsed, err := strconv.ParseBool(activeOnly)
		if err != nil {
			return nil, err
		}
		req.ActiveOnly = parsed
	}

	return req, nil
}
