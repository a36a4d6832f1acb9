package repository

import (
	"context"

	"krishihive/internal/domain/entity"
)

// OrderRepository persists checkout snapshots.
type OrderRepository interface {
	// Create persists a new order and returns its assigned ID.
	Create(ctx context.Context, order *entity.Order) (string, error)

	// ListByBuyer returns a buyer's orders, newest first.
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)
}
