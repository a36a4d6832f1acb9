package model

import (
	"time"

	"krishihive/internal/domain/entity"
)

// OrderModel is an orders/{id} document. Items are embedded verbatim so the
// order stays a faithful snapshot of the cart at checkout time.
type OrderModel struct {
	BuyerID   string          `firestore:"buyerId"`
	Items     []CartItemModel `firestore:"items"`
	Total     float64         `firestore:"total"`
	Status    string          `firestore:"status"`
	CreatedAt time.Time       `firestore:"createdAt"`
}

// ToOrderDomain converts a stored order back to a domain entity.
func ToOrderDomain(id string, m *OrderModel) *entity.Order {
	return &entity.Order{
		ID:        id,
		BuyerID:   m.BuyerID,
		Items:     ToCartDomain(m.Items),
		Total:     m.Total,
		Status:    entity.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FromOrderDomain converts a domain order into its stored form.
func FromOrderDomain(order *entity.Order) *OrderModel {
	return &OrderModel{
		BuyerID:   order.BuyerID,
		Items:     FromCartDomain(order.Items),
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}
