package memory

import (
	"context"
	"sync"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Store in-memory реализация kvstore.Store.
// Используется в демо-профиле и в тестах; данные живут до перезапуска процесса.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore создает новое пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Load возвращает blob по ключу
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}

	// Возвращаем копию, чтобы вызывающий не мог изменить хранимое значение
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save записывает blob по ключу
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
