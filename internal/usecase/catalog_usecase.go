package usecase

import (
	"context"
	"io"

	"krishihive/internal/domain/entity"
)

// CatalogUsecase defines the interface for the product catalog and the
// seller listing tool.
type CatalogUsecase interface {
	// ListProducts returns catalog entries for a category, newest first.
	// An empty category lists everything.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct retrieves a single listing.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct publishes a seller's listing, uploading the image first
	// when one is supplied.
	CreateProduct(ctx context.Context, sellerID string, input *CreateProductInput) (*entity.Product, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to publish a listing.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	Unit        string  `json:"unit" validate:"required"`
	SellerName  string  `json:"seller_name"`

	// Optional image payload from the multipart form.
	ImageName        string    `json:"-"`
	ImageContentType string    `json:"-"`
	Image            io.Reader `json:"-"`
}
