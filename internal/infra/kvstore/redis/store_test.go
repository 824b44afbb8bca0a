package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, "zenya_bookings", []byte(`[]`)))

	data, err := store.Load(ctx, "zenya_bookings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestStore_LoadMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, "key", []byte("value")))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Load(ctx, "key")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, "key", []byte("first")))
	require.NoError(t, store.Save(ctx, "key", []byte("second")))

	data, err := store.Load(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}
