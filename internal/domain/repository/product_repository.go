package repository

import (
	"context"
	"errors"

	"krishihive/internal/domain/entity"
)

// ErrProductNotFound is returned when a product document does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists marketplace listings.
type ProductRepository interface {
	// FindByID retrieves a single product by its document ID.
	// Returns ErrProductNotFound if no document exists.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// ListByCategory returns products in a category ordered by update time,
	// newest first. An empty category returns the whole catalog.
	ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error)

	// Create persists a new product and returns its assigned ID.
	Create(ctx context.Context, product *entity.Product) (string, error)
}
