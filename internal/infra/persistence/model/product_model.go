package model

import (
	"time"

	"krishihive/internal/domain/entity"
)

// ProductModel is a products/{id} document.
type ProductModel struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description,omitempty"`
	Category    string    `firestore:"category"`
	Price       float64   `firestore:"price"`
	Quantity    int       `firestore:"quantity"`
	Unit        string    `firestore:"unit"`
	ImageURL    string    `firestore:"imageUrl,omitempty"`
	SellerID    string    `firestore:"sellerId"`
	SellerName  string    `firestore:"sellerName,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// ToProductDomain converts a stored product back to a domain entity.
func ToProductDomain(id string, m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		ImageURL:    m.ImageURL,
		SellerID:    m.SellerID,
		SellerName:  m.SellerName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromProductDomain converts a domain product into its stored form.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Unit:        product.Unit,
		ImageURL:    product.ImageURL,
		SellerID:    product.SellerID,
		SellerName:  product.SellerName,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
