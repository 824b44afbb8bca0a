package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
	memoryStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/memory"
	servicesRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/services"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T, catalog []*domain.Service) *Service {
	t.Helper()

	store := memoryStore.NewStore()
	data, err := json.Marshal(catalog)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), kvstore.KeyServices, data))

	return NewService(servicesRepo.NewRepository(store), nopLogger{})
}

func TestService_List(t *testing.T) {
	svc := newTestService(t, []*domain.Service{
		{ID: "1", Name: "Premium Consultation", DurationMinutes: 60, Price: 150},
		{ID: "2", Name: "Executive Coaching", DurationMinutes: 90, Price: 250},
	})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Premium Consultation", resp.Services[0].Name)
	assert.Equal(t, 90, resp.Services[1].DurationMinutes)
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(t, []*domain.Service{
		{ID: "1", Name: "Premium Consultation", DurationMinutes: 60},
	})

	resp, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Consultation", resp.Name)

	_, err = svc.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
