package repository

import (
	"context"

	"github.com/pasajes-microservice/internal/domain"
)

// StreamRepository - Redis Streams access
type StreamRepository interface {
	// ConsumeBatch reads up to maxCount pending messages without blocking long
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

// EventPublisher publishes ticket lifecycle events
type EventPublisher interface {
	PublishTicketEvent(ctx context.Context, event domain.TicketEvent) error
}
