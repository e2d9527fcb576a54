package models

import "strings"

// Product is a single stock line owned by one user.
type Product struct {
	// ID is the surrogate key. Zero means the product was never stored.
	ID int64 `json:"id"`

	Name string `json:"name"`
	SKU  string `json:"sku"`

	// Supplier cannot be changed once the product is stored.
	Supplier string `json:"supplier"`

	// Quantity is free text; no arithmetic is ever performed on it.
	Quantity string `json:"quantity"`

	// UserID is the owner of the product.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// Trimmed returns a copy of p with surrounding whitespace removed from every
// text field.
func (p Product) Trimmed() Product {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Supplier = strings.TrimSpace(p.Supplier)
	p.Quantity = strings.TrimSpace(p.Quantity)
	return p
}
