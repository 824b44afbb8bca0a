package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrBootstrap возвращается при ошибке начального заполнения хранилища
var ErrBootstrap = errors.New("seed: bootstrap failed")

// Services демо-каталог услуг Zenya
func Services() []*domain.Service {
	return []*domain.Service{
		{
			ID:              "1",
			Name:            "Premium Consultation",
			Description:     "One-on-one consultation with our expert advisor.",
			DurationMinutes: 60,
			Price:           150,
			Category:        "Consultation",
			Color:           "#4f46e5",
		},
		{
			ID:              "2",
			Name:            "Executive Coaching",
			Description:     "Personalized coaching session for executives and leaders.",
			DurationMinutes: 90,
			Price:           250,
			Category:        "Coaching",
			Color:           "#0369a1",
		},
		{
			ID:              "3",
			Name:            "Wellness Session",
			Description:     "Comprehensive wellness and mindfulness session.",
			DurationMinutes: 75,
			Price:           175,
			Category:        "Wellness",
			Color:           "#16a34a",
		},
		{
			ID:              "4",
			Name:            "Strategic Planning",
			Description:     "Collaborative strategic planning and roadmapping session.",
			DurationMinutes: 120,
			Price:           350,
			Category:        "Strategy",
			Color:           "#9333ea",
		},
		{
			ID:              "5",
			Name:            "Express Check-in",
			Description:     "Quick check-in and progress assessment.",
			DurationMinutes: 30,
			Price:           75,
			Category:        "Check-in",
			Color:           "#dc2626",
		},
	}
}

// Users демо-пользователи
func Users() []*domain.User {
	return []*domain.User{
		{
			ID:    "1",
			Name:  "Admin User",
			Email: "admin@zenya.com",
			Role:  domain.RoleAdmin,
		},
		{
			ID:    "2",
			Name:  "Test Customer",
			Email: "customer@example.com",
			Role:  domain.RoleCustomer,
		},
	}
}

type demoCustomer struct {
	name  string
	email string
	phone string
}

var demoCustomers = []demoCustomer{
	{"Emma Thompson", "emma@example.com", "555-123-4567"},
	{"James Wilson", "james@example.com", "555-987-6543"},
	{"Olivia Garcia", "olivia@example.com", "555-456-7890"},
	{"William Chen", "william@example.com", "555-789-0123"},
	{"Sophia Kim", "sophia@example.com", "555-234-5678"},
}

// GenerateBookings генерирует демо-набор из 30 бронирований, распределённых
// по ближайшим дням: по три в день с шагом три часа начиная с 09:00.
// Услуга, клиент и статус выбираются через переданный генератор случайных чисел.
func GenerateBookings(now time.Time, rng *rand.Rand) []*domain.Booking {
	services := Services()
	statuses := domain.AllStatuses
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bookings := make([]*domain.Booking, 0, 30)
	for i := 0; i < 30; i++ {
		dayOffset := i / 3
		hourOffset := (i % 3) * 3

		start := today.AddDate(0, 0, dayOffset).
			Add(time.Duration(domain.BusinessDayOpenHour+hourOffset) * time.Hour)

		service := services[rng.Intn(len(services))]
		customer := demoCustomers[rng.Intn(len(demoCustomers))]

		var notes *string
		if rng.Float64() > 0.7 {
			note := "Special requests noted for this appointment."
			notes = &note
		}

		bookings = append(bookings, &domain.Booking{
			ID:            fmt.Sprintf("booking-%d", i+1),
			ServiceID:     service.ID,
			ServiceName:   service.Name,
			Start:         start,
			End:           start.Add(time.Duration(service.DurationMinutes) * time.Minute),
			CustomerName:  customer.name,
			CustomerEmail: customer.email,
			CustomerPhone: customer.phone,
			Notes:         notes,
			Status:        statuses[rng.Intn(len(statuses))],
			Color:         service.Color,
			CreatedAt:     today.AddDate(0, 0, -rng.Intn(10)),
		})
	}

	return bookings
}

// Bootstrap заполняет хранилище демо-данными.
// Каждый ключ записывается только если он отсутствует, поэтому повторный
// вызов не изменяет и не дублирует уже сохранённые коллекции.
func Bootstrap(ctx context.Context, store kvstore.Store, now time.Time, rng *rand.Rand, log Logger) error {
	if err := seedKey(ctx, store, kvstore.KeyServices, Services(), log); err != nil {
		return err
	}

	if err := seedKey(ctx, store, kvstore.KeyUsers, Users(), log); err != nil {
		return err
	}

	if err := seedKey(ctx, store, kvstore.KeyBookings, GenerateBookings(now, rng), log); err != nil {
		return err
	}

	return nil
}

// seedKey записывает коллекцию по ключу, только если ключ ещё не существует
func seedKey(ctx context.Context, store kvstore.Store, key string, collection interface{}, log Logger) error {
	_, err := store.Load(ctx, key)
	if err == nil {
		log.Info("Bootstrap: key %q already present, skipping", key)
		return nil
	}
	if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("%w: check key %q: %v", ErrBootstrap, key, err)
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("%w: encode key %q: %v", ErrBootstrap, key, err)
	}

	if err := store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("%w: save key %q: %v", ErrBootstrap, key, err)
	}

	log.Info("Bootstrap: seeded key %q", key)
	return nil
}
