package get_available_slots

import (
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	getAvailableSlots "github.com/zenya-app/Zenya-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                   string          `json:"date"`
	ServiceID              string          `json:"serviceId"`
	ServiceDurationMinutes int             `json:"serviceDurationMinutes"`
	Slots                  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID        string `json:"id"`
	Start     string `json:"start"` // ISO 8601
	End       string `json:"end"`   // ISO 8601
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Start:     slot.Start.Format(time.RFC3339),
			End:       slot.End.Format(time.RFC3339),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		ServiceID:              resp.ServiceID,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Slots:                  slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Дата парсится в локальной таймзоне: рабочий день 09:00-17:00
// считается по локальному времени сервера.
func ToUseCaseRequest(serviceID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
