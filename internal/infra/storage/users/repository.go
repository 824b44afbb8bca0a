package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Repository репозиторий коллекции пользователей
type Repository struct {
	store kvstore.Store
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

// GetAll получает всех пользователей в порядке хранения
func (r *Repository) GetAll(ctx context.Context) ([]*domain.User, error) {
	return r.loadAll(ctx)
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range all {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, ErrUserNotFound
}

// GetCurrent возвращает "текущего" пользователя демо-окружения:
// первого администратора, а если администраторов нет - первого пользователя
func (r *Repository) GetCurrent(ctx context.Context) (*domain.User, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return nil, ErrUserNotFound
	}

	for _, user := range all {
		if user.IsAdmin() {
			return user, nil
		}
	}

	return all[0], nil
}

// Create добавляет пользователя в коллекцию и сохраняет её
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	all = append(all, user)

	if err := r.saveAll(ctx, all); err != nil {
		return nil, err
	}

	return user, nil
}

// loadAll читает коллекцию пользователей из хранилища.
// Отсутствующий ключ и повреждённые данные читаются как пустая коллекция.
func (r *Repository) loadAll(ctx context.Context) ([]*domain.User, error) {
	data, err := r.store.Load(ctx, kvstore.KeyUsers)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []*domain.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loadAll: %v", ErrStorage, err)
	}

	var all []*domain.User
	if err := json.Unmarshal(data, &all); err != nil {
		return []*domain.User{}, nil
	}

	if all == nil {
		all = []*domain.User{}
	}
	return all, nil
}

// saveAll записывает коллекцию пользователей в хранилище целиком
func (r *Repository) saveAll(ctx context.Context, all []*domain.User) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("%w: saveAll: %v", ErrEncode, err)
	}

	if err := r.store.Save(ctx, kvstore.KeyUsers, data); err != nil {
		return fmt.Errorf("%w: saveAll: %v", ErrStorage, err)
	}

	return nil
}
