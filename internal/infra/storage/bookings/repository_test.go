package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
	memoryStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/memory"
	"github.com/zenya-app/Zenya-BookingService/pkg/ptr"
)

func newTestRepository() *Repository {
	return NewRepository(memoryStore.NewStore())
}

func testBooking(id string, start time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ServiceID:     "1",
		ServiceName:   "Strategy Consultation",
		Start:         start,
		End:           start.Add(time.Hour),
		CustomerName:  "Anna Weber",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+49 151 0000000",
		Status:        status,
		Color:         "#4f46e5",
		CreatedAt:     start.Add(-24 * time.Hour),
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, testBooking("b-1", start, domain.StatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, "b-1", created.ID)

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.True(t, got.Start.Equal(start))
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetAllSortedByStart(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Создаем в обратном порядке
	_, err := repo.Create(ctx, testBooking("b-late", day.Add(15*time.Hour), domain.StatusConfirmed))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("b-early", day.Add(9*time.Hour), domain.StatusConfirmed))
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b-early", all[0].ID)
	assert.Equal(t, "b-late", all[1].ID)
}

func TestRepository_GetWithFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	confirmed := testBooking("b-confirmed", day.Add(9*time.Hour), domain.StatusConfirmed)
	cancelled := testBooking("b-cancelled", day.Add(12*time.Hour), domain.StatusCancelled)
	otherService := testBooking("b-other", day.Add(15*time.Hour), domain.StatusConfirmed)
	otherService.ServiceID = "2"

	for _, b := range []*domain.Booking{confirmed, cancelled, otherService} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	t.Run("empty filter returns whole collection including cancelled", func(t *testing.T) {
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "b-confirmed", got[0].ID)
		assert.Equal(t, "b-cancelled", got[1].ID)
		assert.Equal(t, "b-other", got[2].ID)
	})

	t.Run("active only skips cancelled", func(t *testing.T) {
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b-confirmed", got[0].ID)
		assert.Equal(t, "b-other", got[1].ID)
	})

	t.Run("by service", func(t *testing.T) {
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{ServiceID: ptr.Ptr("2")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b-other", got[0].ID)
	})

	t.Run("explicit status returns cancelled too", func(t *testing.T) {
		status := domain.StatusCancelled
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b-cancelled", got[0].ID)
	})

	t.Run("by period", func(t *testing.T) {
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{
			StartDate: ptr.Ptr(day.Add(10 * time.Hour)),
			EndDate:   ptr.Ptr(day.Add(16 * time.Hour)),
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b-cancelled", got[0].ID)
		assert.Equal(t, "b-other", got[1].ID)
	})

	t.Run("by period active only", func(t *testing.T) {
		got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{
			StartDate:  ptr.Ptr(day.Add(10 * time.Hour)),
			EndDate:    ptr.Ptr(day.Add(16 * time.Hour)),
			ActiveOnly: true,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b-other", got[0].ID)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testBooking("b-1", start, domain.StatusPending))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, "b-1", domain.StatusCompleted))

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestRepository_UpdateStatusNotFoundLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testBooking("b-1", start, domain.StatusConfirmed))
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, "missing", domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testBooking("b-1", start, domain.StatusConfirmed))
	require.NoError(t, err)

	newStart := start.Add(3 * time.Hour)
	newEnd := newStart.Add(time.Hour)
	require.NoError(t, repo.Reschedule(ctx, "b-1", newStart, newEnd))

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(newStart))
	assert.True(t, got.End.Equal(newEnd))
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testBooking("b-1", start, domain.StatusConfirmed))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "b-1"))

	_, err = repo.GetByID(ctx, "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "b-1"), ErrBookingNotFound)
}

func TestRepository_MalformedBlobReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memoryStore.NewStore()
	repo := NewRepository(store)

	require.NoError(t, store.Save(ctx, kvstore.KeyBookings, []byte("{not json")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
