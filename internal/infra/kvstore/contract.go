package kvstore

import "context"

// Storage keys for the persisted collections
const (
	KeyBookings = "zenya_bookings"
	KeyServices = "zenya_services"
	KeyUsers    = "zenya_users"
)

// Store интерфейс key-value хранилища сериализованных коллекций.
// Граница персистентности: репозитории читают и пишут коллекции целиком
// как единый blob, без инкрементальных обновлений.
type Store interface {
	// Load возвращает blob по ключу. Если ключ отсутствует - ErrKeyNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save записывает blob по ключу, перезаписывая предыдущее значение
	Save(ctx context.Context, key string, data []byte) error

	// Delete удаляет ключ. Отсутствие ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
}
