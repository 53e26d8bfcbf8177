package postgres

import (
	"context"
	"database/sql"

	"github.com/pasajes-microservice/internal/domain/repository"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

// ProcedureGenerateCSV - server-side procedure with a single INOUT text parameter
const ProcedureGenerateCSV = "sp_generar_reporte_csv"

const generateCSVQuery = `CALL ` + ProcedureGenerateCSV + `(NULL::text)`

type reportRepository struct {
	db *DB
}

// NewReportRepository создает repository отчётов
func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// GenerateCSV materializes the whole report in memory
func (r *reportRepository) GenerateCSV(ctx context.Context) (string, error) {
	var csv sql.NullString
	if err := r.db.executor(ctx).QueryRowxContext(ctx, generateCSVQuery).Scan(&csv); err != nil {
		r.db.logger.Error("Failed to call report procedure",
			zap.String("procedure", ProcedureGenerateCSV),
			zap.Error(err))
		return "", apperrors.ErrDatabaseError.Wrap(err)
	}

	r.db.logger.Debug("Report generated", zap.Int("bytes", len(csv.String)))
	return csv.String, nil
}
