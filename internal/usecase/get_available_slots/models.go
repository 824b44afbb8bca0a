package get_available_slots

import (
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string    // ID услуги из каталога
	Date      time.Time // Дата для получения слотов (время суток игнорируется)
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date      time.Time         // Дата, на которую запрашивались слоты
	ServiceID string            // ID услуги
	// Длительность услуги - маркер для отображения времени окончания;
	// на границы самих слотов она не влияет
	ServiceDurationMinutes int
	Slots                  []domain.TimeSlot // Все слоты рабочего дня с флагом доступности
}
