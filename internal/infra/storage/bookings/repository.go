package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Repository репозиторий для работы с коллекцией бронирований.
// Коллекция хранится целиком как один blob: каждая мутация читает её,
// изменяет и записывает обратно. На демо-масштабе это приемлемо,
// на больших коллекциях каждая операция стоит O(n).
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Create добавляет бронирование в коллекцию и сохраняет её.
// Проверка доступности слота на этом уровне НЕ выполняется: вызывающий
// обязан свериться с генератором слотов до создания.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	all = append(all, booking)

	if err := r.saveAll(ctx, all); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, booking := range all {
		if booking.ID == id {
			return booking, nil
		}
	}

	return nil, ErrBookingNotFound
}

// GetAll получает все бронирования, отсортированные по времени начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	sortByStart(all)
	return all, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Услуге (ServiceID) - опционально
// - Статусу (Status) - опционально
// - Периоду (StartDate, EndDate) - опционально, по времени начала бронирования
// - Исключению отменённых бронирований (ActiveOnly)
// Пустой фильтр возвращает коллекцию целиком, вместе с отменёнными записями.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Booking, 0, len(all))
	for _, booking := range all {
		if !matchesFilter(booking, filter) {
			continue
		}
		filtered = append(filtered, booking)
	}

	sortByStart(filtered)
	return filtered, nil
}

// UpdateStatus обновляет статус бронирования.
// Переходы между статусами не ограничены: любой допустимый статус
// принимается независимо от текущего.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.mutate(ctx, id, func(booking *domain.Booking) {
		booking.Status = status
	})
}

// Reschedule переносит бронирование на новый временной диапазон.
// Доступность нового диапазона не перепроверяется - это обязанность вызывающего.
func (r *Repository) Reschedule(ctx context.Context, id string, newStart, newEnd time.Time) error {
	return r.mutate(ctx, id, func(booking *domain.Booking) {
		booking.Start = newStart
		booking.End = newEnd
	})
}

// Update полностью заменяет бронирование с тем же ID
func (r *Repository) Update(ctx context.Context, updated *domain.Booking) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	for i, booking := range all {
		if booking.ID == updated.ID {
			all[i] = updated
			return r.saveAll(ctx, all)
		}
	}

	return ErrBookingNotFound
}

// Delete физически удаляет бронирование из коллекции.
// Для сохранения истории предпочтительна отмена через UpdateStatus;
// физическое удаление оставлено как отдельная возможность хранилища.
func (r *Repository) Delete(ctx context.Context, id string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*domain.Booking, 0, len(all))
	for _, booking := range all {
		if booking.ID != id {
			remaining = append(remaining, booking)
		}
	}

	if len(remaining) == len(all) {
		return ErrBookingNotFound
	}

	return r.saveAll(ctx, remaining)
}

// mutate применяет изменение к бронированию по ID и сохраняет коллекцию.
// Если бронирование не найдено, коллекция остаётся нетронутой.
func (r *Repository) mutate(ctx context.Context, id string, apply func(*domain.Booking)) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	for _, booking := range all {
		if booking.ID == id {
			apply(booking)
			return r.saveAll(ctx, all)
		}
	}

	return ErrBookingNotFound
}

// loadAll читает коллекцию бронирований из хранилища.
// Отсутствующий ключ и повреждённые данные читаются как пустая коллекция
// (decode-or-empty): ошибка декодирования никогда не фатальна.
func (r *Repository) loadAll(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.store.Load(ctx, kvstore.KeyBookings)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loadAll: %v", ErrStorage, err)
	}

	var all []*domain.Booking
	if err := json.Unmarshal(data, &all); err != nil {
		return []*domain.Booking{}, nil
	}

	if all == nil {
		all = []*domain.Booking{}
	}
	return all, nil
}

// saveAll записывает коллекцию бронирований в хранилище целиком
func (r *Repository) saveAll(ctx context.Context, all []*domain.Booking) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("%w: saveAll: %v", ErrEncode, err)
	}

	if err := r.store.Save(ctx, kvstore.KeyBookings, data); err != nil {
		return fmt.Errorf("%w: saveAll: %v", ErrStorage, err)
	}

	return nil
}

// matchesFilter проверяет, что бронирование соответствует фильтру
func matchesFilter(booking *domain.Booking, filter domain.BookingsFilter) bool {
	if filter.ServiceID != nil && booking.ServiceID != *filter.ServiceID {
		return false
	}

	if filter.Status != nil {
		if booking.Status != *filter.Status {
			return false
		}
	} else if filter.ActiveOnly && !booking.IsActive() {
		return false
	}

	if filter.StartDate != nil && booking.Start.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && booking.Start.After(*filter.EndDate) {
		return false
	}

	return true
}

// sortByStart сортирует бронирования по времени начала (по возрастанию)
func sortByStart(all []*domain.Booking) {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})
}
