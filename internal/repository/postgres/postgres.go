package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pasajes-microservice/internal/config"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type (
	connKey struct{}
	txKey   struct{}
)

// executor is satisfied by *sqlx.DB, *sqlx.Conn and *sqlx.Tx
type executor interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// DB - pool of store connections; each unit of work borrows exactly one
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New opens the pool. It does not dial: unavailability is reported per request on acquire.
func New(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Open("pgx", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	logger.Info("PostgreSQL pool configured",
		zap.String("dsn", cfg.Database.DSN),
		zap.String("user", cfg.Database.User),
		zap.Int("max_conns", cfg.Database.MaxConns),
	)

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Acquire borrows one connection from the pool. The caller must Close it.
func (db *DB) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := db.Connx(ctx)
	if err != nil {
		db.logger.Error("Failed to acquire database connection", zap.Error(err))
		return nil, apperrors.ErrDatabaseUnavailable.Wrap(err)
	}
	return conn, nil
}

func (db *DB) release(conn *sqlx.Conn) {
	if err := conn.Close(); err != nil {
		db.logger.Warn("Failed to release database connection", zap.Error(err))
	}
}

// WithinConnection runs fn on a dedicated connection, released whatever fn returns
func (db *DB) WithinConnection(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.bound(ctx) {
		return fn(ctx)
	}

	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	return fn(context.WithValue(ctx, connKey{}, conn))
}

// WithinTransaction runs fn in a transaction on a dedicated connection.
// Commits when fn returns nil, rolls back on error or panic.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		db.logger.Error("Failed to begin transaction", zap.Error(err))
		return apperrors.ErrDatabaseError.Wrap(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		db.logger.Error("Failed to commit transaction", zap.Error(err))
		return apperrors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func (db *DB) bound(ctx context.Context) bool {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return true
	}
	_, ok := ctx.Value(connKey{}).(*sqlx.Conn)
	return ok
}

// executor picks the transaction, then the connection bound to ctx, then the pool
func (db *DB) executor(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	if conn, ok := ctx.Value(connKey{}).(*sqlx.Conn); ok {
		return conn
	}
	return db.DB
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
