package entity

import "time"

// Product is a marketplace listing created by a seller.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64 // rupees per unit
	Quantity    int     // stock on hand, in Unit
	Unit        string  // e.g. "kg", "quintal", "bag"
	ImageURL    string
	SellerID    string // UID of the listing user
	SellerName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
