package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// psql строитель запросов с PostgreSQL-плейсхолдерами ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const schemaQuery = `
CREATE TABLE IF NOT EXISTS collections (
    key        TEXT PRIMARY KEY,
    data       BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store реализация kvstore.Store поверх PostgreSQL.
// Все коллекции лежат в одной таблице collections как blob-значения,
// запись выполняется через upsert по ключу.
type Store struct {
	db *sql.DB
}

// NewStore создает хранилище поверх открытого соединения с БД
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema создает таблицу collections, если её ещё нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", kvstore.ErrSave, err)
	}
	return nil
}

// Load возвращает blob по ключу
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.Select("data").
		From("collections").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build query: %v", kvstore.ErrLoad, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load %q: %v", kvstore.ErrLoad, key, err)
	}

	return data, nil
}

// Save записывает blob по ключу (upsert)
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psql.Insert("collections").
		Columns("key", "data").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build query: %v", kvstore.ErrSave, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save %q: %v", kvstore.ErrSave, key, err)
	}

	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete("collections").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build query: %v", kvstore.ErrDelete, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete %q: %v", kvstore.ErrDelete, key, err)
	}

	return nil
}
