package repo

import (
	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order and looked up by linear scan.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Create appends a product. IDs are supplied by the caller and must be unique.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if _, ok := r.indexOf(product.ID); ok {
		return models.Product{}, ErrDuplicateProductID
	}
	if product.Quantity < 0 {
		return models.Product{}, ErrInvalidQuantity
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll returns a copy of every product in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	i, ok := r.indexOf(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// SetQuantity overwrites the stock level of a product, leaving its other fields untouched.
func (r *InMemoryProductRepository) SetQuantity(id int, quantity int) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, ErrInvalidQuantity
	}
	i, ok := r.indexOf(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	r.products[i].Quantity = quantity
	return r.products[i], nil
}

// Delete removes a product from the repository by its ID and returns it.
func (r *InMemoryProductRepository) Delete(id int) (models.Product, error) {
	i, ok := r.indexOf(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	removed := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)
	return removed, nil
}

// Len reports how many products are stored.
func (r *InMemoryProductRepository) Len() int {
	return len(r.products)
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

// indexOf returns the position of the first product with the given ID.
func (r *InMemoryProductRepository) indexOf(id int) (int, bool) {
	for i, p := range r.products {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}
