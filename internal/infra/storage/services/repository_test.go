package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
	memoryStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/memory"
)

func seedCatalog(t *testing.T, store kvstore.Store, services []*domain.Service) {
	t.Helper()

	data, err := json.Marshal(services)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), kvstore.KeyServices, data))
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	store := memoryStore.NewStore()
	repo := NewRepository(store)

	seedCatalog(t, store, []*domain.Service{
		{ID: "1", Name: "Premium Consultation", DurationMinutes: 60},
		{ID: "2", Name: "Executive Coaching", DurationMinutes: 90},
	})

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Premium Consultation", all[0].Name)
}

func TestRepository_GetAllEmptyWhenKeyMissing(t *testing.T) {
	repo := NewRepository(memoryStore.NewStore())

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	store := memoryStore.NewStore()
	repo := NewRepository(store)

	seedCatalog(t, store, []*domain.Service{
		{ID: "1", Name: "Premium Consultation", DurationMinutes: 60},
	})

	service, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 60, service.DurationMinutes)

	_, err = repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_MalformedBlobReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memoryStore.NewStore()
	repo := NewRepository(store)

	require.NoError(t, store.Save(ctx, kvstore.KeyServices, []byte("garbage")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
