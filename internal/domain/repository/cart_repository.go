// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"krishihive/internal/domain/entity"
)

// ErrCartNotFound is returned when no cart document exists for a user.
// It is distinct from transport errors: a missing cart is a normal state
// (the user has never saved one), a failed fetch is not.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists one cart document per user, keyed by the
// authentication provider's UID. Only the item list is stored; the total is
// always re-derived by the reducer on load.
type CartRepository interface {
	// Load retrieves the saved item list for a user.
	// Returns ErrCartNotFound if the user has never saved a cart.
	Load(ctx context.Context, uid string) ([]entity.CartItem, error)

	// Save overwrites the user's cart document with the given item list.
	Save(ctx context.Context, uid string, items []entity.CartItem) error
}
