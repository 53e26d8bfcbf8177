package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/pkg/utils"
	"github.com/pasajes-microservice/internal/usecase"
)

// ReportHandler отдает CSV-выгрузку билетов
type ReportHandler struct {
	reportUC ReportService
	logger   *zap.Logger
}

func NewReportHandler(reportUC ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// ExportCSV godoc
// @Summary Export tickets as CSV
// @Description CSV, построенный хранимой процедурой sp_generar_reporte_csv
// @Tags Reports
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} utils.ErrorResponse
// @Router /export/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	csv, err := h.reportUC.ExportCSV(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", usecase.ReportFilename))
	return c.Status(fiber.StatusOK).SendString(csv)
}
