//go:build ignore

// tail_events prints the latest ticket events and optionally publishes a test one.
//
//	go run scripts/tail_events.go -redis localhost:6379 -n 20 -publish
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ticketEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"`
	TicketID   int64     `json:"ticket_id"`
	RouteID    int64     `json:"route_id,omitempty"`
	FinalValue float64   `json:"final_value,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	stream := flag.String("stream", "stream:pasajes:events", "ticket event stream")
	count := flag.Int64("n", 10, "how many entries to print")
	publish := flag.Bool("publish", false, "publish a ticket.created test event first")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if *publish {
		data, err := json.Marshal(ticketEvent{
			EventID:    uuid.New(),
			Type:       "ticket.created",
			TicketID:   0,
			RouteID:    1,
			FinalValue: 10,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: *stream,
			Values: map[string]interface{}{"data": string(data)},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}
		fmt.Printf("published %s\n\n", id)
	}

	entries, err := client.XRevRangeN(ctx, *stream, "+", "-", *count).Result()
	if err != nil {
		log.Fatalf("Failed to read stream: %v", err)
	}

	if len(entries) == 0 {
		fmt.Printf("%s is empty\n", *stream)
		return
	}

	for _, entry := range entries {
		raw, _ := entry.Values["data"].(string)

		var event ticketEvent
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			fmt.Printf("%s  <malformed> %s\n", entry.ID, raw)
			continue
		}
		fmt.Printf("%s  %-15s ticket=%-6d route=%-4d valor=%.2f  %s\n",
			entry.ID, event.Type, event.TicketID, event.RouteID, event.FinalValue,
			event.OccurredAt.Format(time.RFC3339))
	}
}
