package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableStorages(t *testing.T) (*Storages, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}
	return &Storages{db: db}, mock
}

func TestStorages_Ping(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		s, mock := newPingableStorages(t)
		mock.ExpectPing()

		require.NoError(t, s.Ping(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database unreachable", func(t *testing.T) {
		s, mock := newPingableStorages(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err := s.Ping(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "postgres")
	})

	t.Run("no database", func(t *testing.T) {
		assert.ErrorIs(t, (&Storages{}).Ping(context.Background()), ErrNoDatabase)
	})
}

func TestStorages_IsRetryable(t *testing.T) {
	s, _ := newPingableStorages(t)

	assert.True(t, s.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.False(t, s.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, (&Storages{}).IsRetryable(errors.New("boom")))
}

func TestStorages_CloseWithoutConnections(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}
