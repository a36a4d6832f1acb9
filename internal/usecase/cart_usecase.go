// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"krishihive/internal/domain/entity"
)

// CartUsecase is the explicit cart store: per-user in-memory cart state plus
// the save/load bridge to the remote cart document. It replaces the ambient
// cart context of the original client with a value threaded through handlers.
type CartUsecase interface {
	// Get returns the current in-memory cart for a user (empty if none).
	Get(uid string) entity.CartState

	// Hydrate loads the user's saved cart into memory, best-effort: a missing
	// document or a failed fetch leaves the cart unchanged. A hydrate result
	// is discarded when the cart was mutated while the load was in flight.
	Hydrate(ctx context.Context, uid string)

	// Dispatch applies a cart action and returns the resulting state.
	Dispatch(ctx context.Context, uid string, action entity.CartAction) (entity.CartState, error)

	// Save persists the current item list to the user's cart document.
	Save(ctx context.Context, uid string) error

	// Checkout places an order from the current cart, then clears it.
	// The cart is cleared only after every durable write has succeeded.
	Checkout(ctx context.Context, uid string) (*CheckoutOutput, error)

	// ListOrders returns the user's past orders, newest first.
	ListOrders(ctx context.Context, uid string) ([]*entity.Order, error)

	// Reset drops the in-memory cart on sign-out. The remote document is
	// left in place for the next session to hydrate from.
	Reset(uid string)
}

// CheckoutOutput reports the order created by a successful checkout.
type CheckoutOutput struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}
