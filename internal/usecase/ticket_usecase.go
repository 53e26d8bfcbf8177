package usecase

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	"github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/pkg/metrics"
	"github.com/pasajes-microservice/internal/pkg/validator"
	"github.com/pasajes-microservice/internal/usecase/dto"
)

const (
	MessageTicketCreated = "Pasaje creado exitosamente"
	MessageTicketDeleted = "Pasaje eliminado"
)

// TicketUseCase - use case продажи, списка и удаления билетов
type TicketUseCase struct {
	gateway       repository.Gateway
	ticketRepo    repository.TicketRepository
	referenceRepo repository.ReferenceRepository
	publisher     repository.EventPublisher // nil when events are disabled
	logger        *zap.Logger
}

// NewTicketUseCase - создание нового TicketUseCase; publisher may be nil
func NewTicketUseCase(
	gateway repository.Gateway,
	ticketRepo repository.TicketRepository,
	referenceRepo repository.ReferenceRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *TicketUseCase {
	return &TicketUseCase{
		gateway:       gateway,
		ticketRepo:    ticketRepo,
		referenceRepo: referenceRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// ListTickets returns tickets newest travel date first; routeID nil means all routes
func (uc *TicketUseCase) ListTickets(ctx context.Context, routeID *domain.ID) ([]dto.TicketResponse, error) {
	var tickets []domain.TicketView
	err := uc.gateway.WithinConnection(ctx, func(ctx context.Context) error {
		var err error
		tickets, err = uc.ticketRepo.List(ctx, routeID)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to list tickets", zap.Error(err))
		return nil, err
	}

	return lo.Map(tickets, func(t domain.TicketView, _ int) dto.TicketResponse {
		return dto.ConvertTicket(t)
	}), nil
}

// CreateTicket prices and stores a ticket in one transaction
func (uc *TicketUseCase) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.CreateTicketResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.Wrap(err)
	}

	// Дата проверяется до обращения к базе
	travelDate, err := domain.ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, errors.ErrInvalidRequest.Wrap(err)
	}

	ticket := &domain.Ticket{
		TravelDate:    travelDate,
		RouteID:       req.RouteID,
		VehicleID:     req.VehicleID,
		FareTypeID:    req.FareTypeID,
		PassengerName: req.PassengerName,
	}

	err = uc.gateway.WithinTransaction(ctx, func(ctx context.Context) error {
		basePrice, err := uc.referenceRepo.GetRouteBasePrice(ctx, req.RouteID)
		if err != nil {
			return err
		}
		discount, err := uc.referenceRepo.GetFareTypeDiscount(ctx, req.FareTypeID)
		if err != nil {
			return err
		}

		ticket.FinalValue = domain.FinalValue(basePrice, discount)
		ticket.ID, err = uc.ticketRepo.Create(ctx, ticket)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to create ticket",
			zap.Int64("route_id", int64(req.RouteID)),
			zap.Int64("fare_type_id", int64(req.FareTypeID)),
			zap.Error(err))
		return nil, err
	}

	metrics.TicketsCreated.Inc()
	uc.logger.Info("Ticket created",
		zap.Int64("ticket_id", int64(ticket.ID)),
		zap.Float64("final_value", ticket.FinalValue))

	event := domain.NewTicketEvent(domain.TicketCreated, ticket.ID)
	event.RouteID = ticket.RouteID
	event.FinalValue = ticket.FinalValue
	uc.publish(ctx, event)

	return &dto.CreateTicketResponse{
		Message: MessageTicketCreated,
		Value:   ticket.FinalValue,
	}, nil
}

// DeleteTicket removes a ticket; deleting an unknown id is not an error
func (uc *TicketUseCase) DeleteTicket(ctx context.Context, id domain.ID) error {
	var deleted bool
	err := uc.gateway.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = uc.ticketRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to delete ticket", zap.Int64("ticket_id", int64(id)), zap.Error(err))
		return err
	}

	if !deleted {
		uc.logger.Debug("Ticket to delete not found", zap.Int64("ticket_id", int64(id)))
		return nil
	}

	metrics.TicketsDeleted.Inc()
	uc.publish(ctx, domain.NewTicketEvent(domain.TicketDeleted, id))
	return nil
}

// publish отправляет событие после коммита; ошибка только логируется
func (uc *TicketUseCase) publish(ctx context.Context, event domain.TicketEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishTicketEvent(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish ticket event",
			zap.String("type", string(event.Type)),
			zap.Int64("ticket_id", int64(event.TicketID)),
			zap.Error(err))
	}
}
