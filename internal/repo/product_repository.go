package repo

import (
	"errors"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	SetQuantity(id int, quantity int) (models.Product, error)
	Delete(id int) (models.Product, error)
}

var (
	// ErrProductNotFound is returned when no product carries the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProductID is returned when creating a product whose ID is taken.
	ErrDuplicateProductID = errors.New("product id already exists")
	// ErrInvalidQuantity is returned when a stock level would drop below zero.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)
