package service

import (
	"context"
	"time"
)

// Order event types published to the back office.
const (
	OrderEventCreated  = "order.created"
	OrderEventPaid     = "order.paid"
	OrderEventRefunded = "order.refunded"
)

// OrderEvent is the payload published when an order changes state.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	InvoiceID  string    `json:"invoice_id,omitempty"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order events to the configured transport.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
