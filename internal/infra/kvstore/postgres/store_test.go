package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db), mock
}

func TestStore_Load(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery("SELECT data FROM collections WHERE key = $1").
		WithArgs("zenya_bookings").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`[]`)))

	data, err := store.Load(context.Background(), "zenya_bookings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadMissingKey(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery("SELECT data FROM collections WHERE key = $1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("INSERT INTO collections (key,data) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		WithArgs("zenya_services", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), "zenya_services", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveError(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("INSERT INTO collections (key,data) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		WithArgs("zenya_services", []byte(`[]`)).
		WillReturnError(errors.New("connection reset"))

	err := store.Save(context.Background(), "zenya_services", []byte(`[]`))
	assert.ErrorIs(t, err, kvstore.ErrSave)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("DELETE FROM collections WHERE key = $1").
		WithArgs("zenya_users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "zenya_users"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_EnsureSchema(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec(schemaQuery).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
