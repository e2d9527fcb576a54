package models

// ProductChange pairs a stored product with the values the user typed over
// it. Before identifies the row; After carries the new field values.
type ProductChange struct {
	Before Product `json:"before"`
	After  Product `json:"after"`
}
