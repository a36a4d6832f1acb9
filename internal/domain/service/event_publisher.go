package service

import (
	"context"

	"krishihive/internal/domain/entity"
)

// OrderPlacedEvent is published after a checkout's durable writes succeed.
type OrderPlacedEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string            `json:"order_id"`
	BuyerID   string            `json:"buyer_id"`
	Total     float64           `json:"total"`
	Items     []entity.CartItem `json:"items"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for async processing
	// (seller notification, analytics). Best-effort: checkout does not roll
	// back if publishing fails.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
