package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain/repository"
)

// ReportFilename - имя файла выгрузки
const ReportFilename = "reporte_pasajes.csv"

type ReportUseCase struct {
	gateway    repository.Gateway
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

func NewReportUseCase(gateway repository.Gateway, reportRepo repository.ReportRepository, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{
		gateway:    gateway,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// ExportCSV returns the CSV document built by the store procedure
func (uc *ReportUseCase) ExportCSV(ctx context.Context) (string, error) {
	var csv string
	err := uc.gateway.WithinConnection(ctx, func(ctx context.Context) error {
		var err error
		csv, err = uc.reportRepo.GenerateCSV(ctx)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to export CSV report", zap.Error(err))
		return "", err
	}

	uc.logger.Debug("CSV report generated", zap.Int("bytes", len(csv)))
	return csv, nil
}
