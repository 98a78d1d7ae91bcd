package inventory

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

func newTestManager(t *testing.T) (*Manager, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewManager(repo.NewInMemoryProductRepository(), logger), hook
}

func mustAdd(t *testing.T, m *Manager, products ...models.Product) {
	t.Helper()
	for _, p := range products {
		if err := m.Add(p); err != nil {
			t.Fatalf("adding product %d: %v", p.ID, err)
		}
	}
}

var (
	widget = models.Product{ID: 1, Name: "Widget", Quantity: 10, Price: 2.5}
	gadget = models.Product{ID: 2, Name: "Gadget", Quantity: 4, Price: 5.0}
)
