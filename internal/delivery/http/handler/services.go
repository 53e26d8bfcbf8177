package handler

import (
	"context"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/usecase/dto"
)

// MetadataService - реализуется usecase.MetadataUseCase
type MetadataService interface {
	GetMetadata(ctx context.Context) (*dto.MetadataResponse, error)
}

// TicketService - реализуется usecase.TicketUseCase
type TicketService interface {
	ListTickets(ctx context.Context, routeID *domain.ID) ([]dto.TicketResponse, error)
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.CreateTicketResponse, error)
	DeleteTicket(ctx context.Context, id domain.ID) error
}

// ReportService - реализуется usecase.ReportUseCase
type ReportService interface {
	ExportCSV(ctx context.Context) (string, error)
}
