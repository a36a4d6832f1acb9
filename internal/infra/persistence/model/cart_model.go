// Package model contains the persistence-layer document structs. They carry
// firestore tags and convert to and from the pure domain entities, so the
// wire format of a document never leaks into the domain layer.
package model

import (
	"time"

	"krishihive/internal/domain/entity"
)

// CartItemModel is one line of a cart document.
type CartItemModel struct {
	ID       string  `firestore:"id"`
	Name     string  `firestore:"name"`
	Price    float64 `firestore:"price"`
	Quantity int     `firestore:"quantity"`
	Unit     string  `firestore:"unit,omitempty"`
	Seller   string  `firestore:"seller,omitempty"`
}

// CartModel is the carts/{uid} document. Only the item list is stored; totals
// are derived on load, never trusted from the document.
type CartModel struct {
	Items     []CartItemModel `firestore:"items"`
	UpdatedAt time.Time       `firestore:"updatedAt,serverTimestamp"`
}

// ToCartDomain converts stored items back to domain values.
func ToCartDomain(items []CartItemModel) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Seller:   item.Seller,
		})
	}

	return out
}

// FromCartDomain converts domain items into their stored form.
func FromCartDomain(items []entity.CartItem) []CartItemModel {
	out := make([]CartItemModel, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemModel{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Seller:   item.Seller,
		})
	}

	return out
}
