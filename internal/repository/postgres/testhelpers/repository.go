package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/pasajes-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest wraps the test connection into a postgres.DB
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPgxDBForTest opens a second pool over the pgx driver, the one production uses
func NewPgxDBForTest(url string, logger *zap.Logger) (*postgres.DB, error) {
	db, err := sqlx.Connect("pgx", url)
	if err != nil {
		return nil, err
	}
	return postgres.NewDBForTest(db, logger), nil
}
