package postgres_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/config"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/repository/postgres"
)

// unreachableDB points at a port nothing listens on
func unreachableDB(t *testing.T) *postgres.DB {
	cfg := &config.Config{Database: config.DatabaseConfig{
		User:         "postgres",
		Password:     "postgres",
		DSN:          "127.0.0.1:1/pasajes",
		SSLMode:      "disable",
		MaxConns:     2,
		MaxIdleConns: 1,
	}}

	db, err := postgres.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_AcquireFailsWithConnectionError(t *testing.T) {
	db := unreachableDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Acquire(ctx)

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrDatabaseUnavailable))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Database connection failed", appErr.PublicMessage())
}

func TestDB_UnitsOfWorkDoNotRunWithoutConnection(t *testing.T) {
	db := unreachableDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	called := false
	fn := func(context.Context) error {
		called = true
		return nil
	}

	err := db.WithinConnection(ctx, fn)
	assert.True(t, stderrors.Is(err, apperrors.ErrDatabaseUnavailable))

	err = db.WithinTransaction(ctx, fn)
	assert.True(t, stderrors.Is(err, apperrors.ErrDatabaseUnavailable))

	assert.False(t, called)
}
