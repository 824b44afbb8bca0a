package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     string    // ID услуги из каталога
	Start         time.Time // Начало бронирования
	End           time.Time // Конец бронирования
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone string    // Телефон клиента
	Notes         *string   // Заметки (опционально)
	Status        string    // Статус; пустая строка = confirmed
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	ServiceID     string
	ServiceName   string
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
	Status        string
	Color         string
	CreatedAt     time.Time
}
