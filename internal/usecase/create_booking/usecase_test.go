package create_booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
	memoryStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/memory"
	bookingsRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/bookings"
	servicesRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/services"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *bookingsRepo.Repository) {
	t.Helper()

	ctx := context.Background()
	store := memoryStore.NewStore()

	catalog, err := json.Marshal([]*domain.Service{
		{ID: "1", Name: "Premium Consultation", DurationMinutes: 60, Color: "#4f46e5"},
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, kvstore.KeyServices, catalog))

	repo := bookingsRepo.NewRepository(store)
	return NewUseCase(repo, servicesRepo.NewRepository(store), nopLogger{}), repo
}

func validRequest() *Request {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &Request{
		ServiceID:     "1",
		Start:         start,
		End:           start.Add(time.Hour),
		CustomerName:  "Emma Thompson",
		CustomerEmail: "emma@example.com",
		CustomerPhone: "555-123-4567",
	}
}

func TestExecute_CreatesBookingWithDefaults(t *testing.T) {
	uc, repo := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пустой статус превращается в confirmed, ID генерируется
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.CreatedAt.IsZero())

	// Данные услуги денормализованы в запись
	assert.Equal(t, "Premium Consultation", resp.ServiceName)
	assert.Equal(t, "#4f46e5", resp.Color)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestExecute_ExplicitStatusIsKept(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.Status = string(domain.StatusPending)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_InvalidStatus(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.Status = "postponed"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.ServiceID = "99"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing serviceID", func(r *Request) { r.ServiceID = "" }, ErrInvalidInput},
		{"missing start", func(r *Request) { r.Start = time.Time{} }, ErrInvalidInput},
		{"missing end", func(r *Request) { r.End = time.Time{} }, ErrInvalidInput},
		{"end before start", func(r *Request) { r.End = r.Start.Add(-time.Hour) }, ErrInvalidTimeRange},
		{"end equals start", func(r *Request) { r.End = r.Start }, ErrInvalidTimeRange},
		{"missing customer name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"missing customer email", func(r *Request) { r.CustomerEmail = "" }, ErrInvalidInput},
		{"missing customer phone", func(r *Request) { r.CustomerPhone = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_OverlappingBookingsBothSucceed(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	// Доступность слота на этом уровне не проверяется:
	// оба пересекающихся бронирования создаются успешно
	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	second, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExecute_DurationMismatchIsAllowed(t *testing.T) {
	uc, _ := newTestUseCase(t)

	// Диапазон в 30 минут при услуге на 60 минут допустим,
	// расхождение только логируется
	req := validRequest()
	req.End = req.Start.Add(30 * time.Minute)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.End, resp.End)
}
