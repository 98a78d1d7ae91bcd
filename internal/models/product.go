package models

import (
	"fmt"
	"strconv"
)

// Product represents a product entity in the inventory system.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Describe renders the product on a single line for listings.
func (p Product) Describe() string {
	return fmt.Sprintf("ID: %d, Name: %s, Quantity: %d, Price: %s",
		p.ID, p.Name, p.Quantity, FormatNumber(p.Price))
}

// FormatNumber prints v in its shortest round-trip form, e.g. 2.5, 5 or 0.1.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
