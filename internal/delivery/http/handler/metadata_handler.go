package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/pkg/utils"
)

// MetadataHandler обрабатывает запросы справочных данных
type MetadataHandler struct {
	metadataUC MetadataService
	logger     *zap.Logger
}

// NewMetadataHandler создает новый экземпляр MetadataHandler
func NewMetadataHandler(metadataUC MetadataService, logger *zap.Logger) *MetadataHandler {
	return &MetadataHandler{
		metadataUC: metadataUC,
		logger:     logger,
	}
}

// GetMetadata godoc
// @Summary Get reference data
// @Description Возвращает маршруты, единицы транспорта и типы билетов для формы продажи
// @Tags Metadata
// @Produce json
// @Success 200 {object} dto.MetadataResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/metadata [get]
func (h *MetadataHandler) GetMetadata(c *fiber.Ctx) error {
	metadata, err := h.metadataUC.GetMetadata(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, metadata)
}
