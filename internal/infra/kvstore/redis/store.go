package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Store реализация kvstore.Store поверх Redis.
// Каждая коллекция хранится как единая строка под своим ключом, без TTL.
type Store struct {
	client *goredis.Client
}

// NewStore создает хранилище поверх готового Redis клиента
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Load возвращает blob по ключу
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load %q: %v", kvstore.ErrLoad, key, err)
	}
	return data, nil
}

// Save записывает blob по ключу
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save %q: %v", kvstore.ErrSave, key, err)
	}
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Delete %q: %v", kvstore.ErrDelete, key, err)
	}
	return nil
}
