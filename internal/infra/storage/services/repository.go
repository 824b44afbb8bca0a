package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
)

// Repository репозиторий каталога услуг.
// Каталог - статические справочные данные: записывается один раз при
// инициализации и дальше только читается.
type Repository struct {
	store kvstore.Store
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

// GetAll получает все услуги каталога в порядке хранения
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Service, error) {
	return r.loadAll(ctx)
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, service := range all {
		if service.ID == id {
			return service, nil
		}
	}

	return nil, ErrServiceNotFound
}

// loadAll читает каталог услуг из хранилища.
// Отсутствующий ключ и повреждённые данные читаются как пустой каталог.
func (r *Repository) loadAll(ctx context.Context) ([]*domain.Service, error) {
	data, err := r.store.Load(ctx, kvstore.KeyServices)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []*domain.Service{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loadAll: %v", ErrStorage, err)
	}

	var all []*domain.Service
	if err := json.Unmarshal(data, &all); err != nil {
		return []*domain.Service{}, nil
	}

	if all == nil {
		all = []*domain.Service{}
	}
	return all, nil
}
