package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/pkg/utils"
	"github.com/pasajes-microservice/internal/usecase"
	"github.com/pasajes-microservice/internal/usecase/dto"
)

// TicketHandler обрабатывает запросы для билетов
type TicketHandler struct {
	ticketUC TicketService
	logger   *zap.Logger
}

// NewTicketHandler создает новый экземпляр TicketHandler
func NewTicketHandler(ticketUC TicketService, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		ticketUC: ticketUC,
		logger:   logger,
	}
}

// ListTickets godoc
// @Summary List tickets
// @Description Список билетов, новые даты поездки первыми. Пустой ruta_id или "null" - без фильтра
// @Tags Tickets
// @Produce json
// @Param ruta_id query string false "Route ID"
// @Success 200 {array} dto.TicketResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/pasajes [get]
func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	routeID, err := parseRouteFilter(c.Query("ruta_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	tickets, err := h.ticketUC.ListTickets(c.UserContext(), routeID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, tickets)
}

// CreateTicket godoc
// @Summary Sell a ticket
// @Description Рассчитывает итоговую стоимость по маршруту и типу билета и сохраняет продажу
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket data"
// @Success 201 {object} dto.CreateTicketResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/pasajes [post]
func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse ticket body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	resp, err := h.ticketUC.CreateTicket(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, resp)
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Description Удаляет билет; удаление несуществующего id не является ошибкой
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/pasajes/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *fiber.Ctx) error {
	id, err := domain.ParseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	if err := h.ticketUC.DeleteTicket(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, utils.MessageResponse{Message: usecase.MessageTicketDeleted})
}

// parseRouteFilter: "", "null" -> no filter
func parseRouteFilter(raw string) (*domain.ID, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	id, err := domain.ParseID(raw)
	if err != nil {
		return nil, errors.ErrInvalidRequest.Wrap(err)
	}
	return &id, nil
}
