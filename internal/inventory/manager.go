// Package inventory holds the business operations over the product collection.
package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

const (
	// FrameRule borders the product listing.
	FrameRule = "==============================="
	// ListTitle is printed between the top rules of a listing.
	ListTitle = " Retail Inventory Details "
	// EmptyListMessage replaces the listing when there is nothing to show.
	EmptyListMessage = "No products available."
)

// Manager owns the inventory collection and exposes the operations the menu offers.
type Manager struct {
	products repo.ProductRepository
	log      logrus.FieldLogger
}

// NewManager wires a Manager on top of a product repository.
func NewManager(products repo.ProductRepository, log logrus.FieldLogger) *Manager {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Manager{products: products, log: log}
}

// Add stores a new product. A product whose ID is already present is rejected
// with repo.ErrDuplicateProductID and the collection is left as it was.
func (m *Manager) Add(p models.Product) error {
	entry := m.log.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name})
	if m.exists(p.ID) {
		entry.Info("rejected duplicate product id")
		return repo.ErrDuplicateProductID
	}
	if _, err := m.products.Create(p); err != nil {
		entry.WithError(err).Warn("could not add product")
		return fmt.Errorf("add product %d: %w", p.ID, err)
	}
	entry.WithFields(logrus.Fields{"quantity": p.Quantity, "price": p.Price}).Debug("product added")
	return nil
}

// Remove deletes the product with the given ID and returns it.
func (m *Manager) Remove(id int) (models.Product, error) {
	removed, err := m.products.Delete(id)
	if err != nil {
		m.logMiss(id, "remove", err)
		return models.Product{}, err
	}
	m.log.WithFields(logrus.Fields{"product_id": id, "name": removed.Name}).Debug("product removed")
	return removed, nil
}

// UpdateQuantity replaces the stock level of a product. Name and price stay as they were.
func (m *Manager) UpdateQuantity(id int, quantity int) (models.Product, error) {
	updated, err := m.products.SetQuantity(id, quantity)
	if err != nil {
		m.logMiss(id, "update quantity", err)
		return models.Product{}, err
	}
	m.log.WithFields(logrus.Fields{
		"product_id": id,
		"name":       updated.Name,
		"quantity":   quantity,
	}).Debug("quantity updated")
	return updated, nil
}

// List renders the inventory as printable lines: a framed header, one line per
// product in insertion order and a closing rule. An empty inventory yields a
// single EmptyListMessage line.
func (m *Manager) List() []string {
	products := m.all()
	if len(products) == 0 {
		return []string{EmptyListMessage}
	}

	lines := make([]string, 0, len(products)+4)
	lines = append(lines, FrameRule, ListTitle, FrameRule)
	for _, p := range products {
		lines = append(lines, p.Describe())
	}
	return append(lines, FrameRule)
}

// TotalValue sums price times quantity over every product.
func (m *Manager) TotalValue() float64 {
	return m.TotalValueDecimal().InexactFloat64()
}

// TotalValueDecimal is TotalValue computed without binary rounding drift.
func (m *Manager) TotalValueDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range m.all() {
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Count reports how many products the inventory holds.
func (m *Manager) Count() int {
	return len(m.all())
}

func (m *Manager) exists(id int) bool {
	_, err := m.products.GetByID(id)
	return err == nil
}

func (m *Manager) all() []models.Product {
	products, err := m.products.GetAll()
	if err != nil {
		m.log.WithError(err).Error("could not read products")
		return nil
	}
	return products
}

func (m *Manager) logMiss(id int, op string, err error) {
	entry := m.log.WithFields(logrus.Fields{"product_id": id, "op": op})
	if errors.Is(err, repo.ErrProductNotFound) {
		entry.Info("product not found")
		return
	}
	entry.WithError(err).Warn("operation rejected")
}

// IsFrameLine reports whether a List line belongs to the listing header or footer.
func IsFrameLine(line string) bool {
	return line == FrameRule || line == ListTitle
}
