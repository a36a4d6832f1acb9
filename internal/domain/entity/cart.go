// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"krishihive/internal/errors"
)

// CartItem is a single line item in a shopping cart. Identity is the product ID;
// the same product never appears twice in a cart.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // rupees per unit
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Seller   string  `json:"seller"`
}

// Subtotal returns the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartState is the full state of one user's cart: line items in insertion order
// plus a running total. Total always equals the sum of the items' subtotals;
// Reduce maintains that invariant on every transition.
type CartState struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// EmptyCart returns the initial cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartItem{}, Total: 0}
}

// IsEmpty reports whether the cart has no items.
func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

// Reducer-level validation errors.
var (
	// ErrInvalidQuantity is returned for actions carrying a quantity below 1.
	// An item can never sit in the cart with quantity 0; removal is explicit.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")

	// ErrInvalidPrice is returned for items with a negative price.
	ErrInvalidPrice = errors.New("cart: price must not be negative")

	// ErrPriceMismatch is returned when an add would merge into an existing
	// line carrying a different price. Summing quantities across two prices
	// would leave the total equal to neither line's price times quantity.
	ErrPriceMismatch = errors.New("cart: price differs from the existing cart line")
)

// CartAction is the sealed set of cart transitions. The concrete types below
// are the only implementations; Reduce type-switches over all of them and
// fails on anything else, so no action can be silently dropped.
type CartAction interface {
	isCartAction()
}

// AddItem inserts an item, merging quantities when the ID is already present.
type AddItem struct {
	Item CartItem
}

// RemoveItem deletes the item with the given ID; unknown IDs are a no-op.
type RemoveItem struct {
	ID string
}

// UpdateQuantity replaces the quantity of an existing item; unknown IDs are a no-op.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// ClearCart resets the cart to its empty state.
type ClearCart struct{}

// LoadCart replaces the cart wholesale with a persisted item list.
// The total is always derived from the items, never trusted from storage.
type LoadCart struct {
	Items []CartItem
}

func (AddItem) isCartAction()        {}
func (RemoveItem) isCartAction()     {}
func (UpdateQuantity) isCartAction() {}
func (ClearCart) isCartAction()      {}
func (LoadCart) isCartAction()       {}

// Reduce is the cart state machine: a pure function from a state and an action
// to the next state. It never mutates its input and performs no I/O.
func Reduce(state CartState, action CartAction) (CartState, error) {
	switch a := action.(type) {
	case AddItem:
		return reduceAdd(state, a.Item)

	case RemoveItem:
		return reduceRemove(state, a.ID), nil

	case UpdateQuantity:
		return reduceUpdateQuantity(state, a.ID, a.Quantity)

	case ClearCart:
		return EmptyCart(), nil

	case LoadCart:
		return reduceLoad(a.Items)

	default:
		return state, errors.Errorf("cart: unknown action %T", action)
	}
}

func reduceAdd(state CartState, item CartItem) (CartState, error) {
	if item.Quantity < 1 {
		return state, ErrInvalidQuantity
	}
	if item.Price < 0 {
		return state, ErrInvalidPrice
	}

	next := CartState{
		Items: make([]CartItem, len(state.Items)),
		Total: state.Total + item.Subtotal(),
	}
	copy(next.Items, state.Items)

	for i := range next.Items {
		if next.Items[i].ID == item.ID {
			if next.Items[i].Price != item.Price {
				return state, ErrPriceMismatch
			}

			// Merge: quantities sum, position in the sequence is preserved.
			next.Items[i].Quantity += item.Quantity

			return next, nil
		}
	}

	next.Items = append(next.Items, item)

	return next, nil
}

func reduceRemove(state CartState, id string) CartState {
	idx := -1
	for i := range state.Items {
		if state.Items[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return state
	}

	next := CartState{
		Items: make([]CartItem, 0, len(state.Items)-1),
		Total: state.Total - state.Items[idx].Subtotal(),
	}
	next.Items = append(next.Items, state.Items[:idx]...)
	next.Items = append(next.Items, state.Items[idx+1:]...)

	return next
}

func reduceUpdateQuantity(state CartState, id string, quantity int) (CartState, error) {
	if quantity < 1 {
		return state, ErrInvalidQuantity
	}

	idx := -1
	for i := range state.Items {
		if state.Items[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return state, nil
	}

	item := state.Items[idx]
	next := CartState{
		Items: make([]CartItem, len(state.Items)),
		Total: state.Total + item.Price*float64(quantity-item.Quantity),
	}
	copy(next.Items, state.Items)
	next.Items[idx].Quantity = quantity

	return next, nil
}

func reduceLoad(items []CartItem) (CartState, error) {
	next := EmptyCart()

	for _, item := range items {
		// Persisted payloads go through the same validation and merge rules as
		// live adds, so duplicate IDs in a stored document collapse into one
		// line instead of corrupting the total.
		merged, err := reduceAdd(next, item)
		if err != nil {
			return EmptyCart(), errors.Wrapf(err, "invalid persisted item %q", item.ID)
		}
		next = merged
	}

	return next, nil
}
