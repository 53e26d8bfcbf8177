package redis

import (
	"context"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
)

type ticketEventPublisher struct {
	streams repository.StreamRepository
	stream  string
}

// NewTicketEventPublisher publishes ticket events to the given stream
func NewTicketEventPublisher(streams repository.StreamRepository, stream string) repository.EventPublisher {
	if stream == "" {
		stream = domain.StreamTicketEvents
	}
	return &ticketEventPublisher{streams: streams, stream: stream}
}

func (p *ticketEventPublisher) PublishTicketEvent(ctx context.Context, event domain.TicketEvent) error {
	return p.streams.PublishToStream(ctx, p.stream, event)
}
