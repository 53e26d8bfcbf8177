package repository

import "context"

// ReportRepository runs server-side report procedures
type ReportRepository interface {
	// GenerateCSV returns the whole CSV document produced by the store
	GenerateCSV(ctx context.Context) (string, error)
}
