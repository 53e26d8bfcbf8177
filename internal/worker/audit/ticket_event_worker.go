package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	"github.com/pasajes-microservice/internal/pkg/metrics"
	"github.com/pasajes-microservice/internal/worker"
)

const (
	maxBatchSize    = 50                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
)

// TicketEventWorker пишет аудит-лог событий продажи и удаления билетов
type TicketEventWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
}

// NewTicketEventWorker создает новый TicketEventWorker
func NewTicketEventWorker(
	streamRepo repository.StreamRepository,
	stream string,
	consumerGroup string,
	logger *zap.Logger,
) *TicketEventWorker {
	if stream == "" {
		stream = domain.StreamTicketEvents
	}

	return &TicketEventWorker{
		BaseWorker: worker.NewBaseWorker("ticket-audit", stream, consumerGroup, logger),
		streamRepo: streamRepo,
	}
}

// Start запускает воркер
func (w *TicketEventWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting TicketEventWorker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// sleep waits for d unless the worker is stopped first
func (w *TicketEventWorker) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// processBatch читает и обрабатывает batch сообщений, returns how many were read
func (w *TicketEventWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	for _, msg := range messages {
		w.handle(msg)

		// ACK всегда: битое сообщение не должно застревать в PEL
		if err := w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), msg.ID); err != nil {
			w.Logger().Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

func (w *TicketEventWorker) handle(msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.TicketEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		metrics.EventsProcessed.WithLabelValues("malformed").Inc()
		return
	}

	if !event.IsKnown() {
		logger.Warn("Unknown event type, skipping",
			zap.String("message_id", msg.ID),
			zap.String("type", string(event.Type)))
		metrics.EventsProcessed.WithLabelValues("unknown").Inc()
		return
	}

	fields := []zap.Field{
		zap.String("message_id", msg.ID),
		zap.String("event_id", event.EventID.String()),
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", int64(event.TicketID)),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.Type == domain.TicketCreated {
		fields = append(fields,
			zap.Int64("route_id", int64(event.RouteID)),
			zap.Float64("final_value", event.FinalValue))
	}

	logger.Info("Ticket audit", fields...)
	metrics.EventsProcessed.WithLabelValues(string(event.Type)).Inc()
}
