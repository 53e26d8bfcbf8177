package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamTicketEvents - default stream for ticket lifecycle events
const StreamTicketEvents = "stream:pasajes:events"

// TicketEventType - kind of ticket lifecycle event
type TicketEventType string

const (
	TicketCreated TicketEventType = "ticket.created"
	TicketDeleted TicketEventType = "ticket.deleted"
)

// TicketEvent - published after a ticket write commits
type TicketEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	Type       TicketEventType `json:"type"`
	TicketID   ID              `json:"ticket_id"`
	RouteID    ID              `json:"route_id,omitempty"`
	FinalValue float64         `json:"final_value,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewTicketEvent stamps a new event with a fresh id and the current time
func NewTicketEvent(eventType TicketEventType, ticketID ID) TicketEvent {
	return TicketEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		TicketID:   ticketID,
		OccurredAt: time.Now().UTC(),
	}
}

// IsKnown reports whether the event type is one this service emits
func (e *TicketEvent) IsKnown() bool {
	return e.Type == TicketCreated || e.Type == TicketDeleted
}

// StreamMessage - message read from a Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
