package entity

import "time"

// OrderStatus tracks an order through fulfilment.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered:
		return true
	default:
		return false
	}
}

// Order is a snapshot of a cart at checkout time. Items are copied verbatim
// so later catalog edits never change what the buyer agreed to.
type Order struct {
	ID        string
	BuyerID   string
	Items     []CartItem
	Total     float64
	Status    OrderStatus
	CreatedAt time.Time
}
