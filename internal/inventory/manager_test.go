package inventory

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

func TestScenario_AddUpdateRemove(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, widget, gadget)

	if got := m.TotalValue(); got != 45.0 {
		t.Fatalf("expected total 45, got %v", got)
	}

	if _, err := m.UpdateQuantity(1, 3); err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if got := m.TotalValue(); got != 27.5 {
		t.Fatalf("expected total 27.5, got %v", got)
	}

	if _, err := m.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	lines := m.List()
	var products []string
	for _, l := range lines {
		if !IsFrameLine(l) {
			products = append(products, l)
		}
	}
	if len(products) != 1 || products[0] != "ID: 1, Name: Widget, Quantity: 3, Price: 2.5" {
		t.Errorf("expected only Widget in listing, got %v", products)
	}
}

func TestAdd_Duplicate(t *testing.T) {
	m, hook := newTestManager(t)
	mustAdd(t, m, widget)

	err := m.Add(models.Product{ID: 1, Name: "Other", Quantity: 1, Price: 100})
	if !errors.Is(err, repo.ErrDuplicateProductID) {
		t.Fatalf("expected ErrDuplicateProductID, got %v", err)
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 product, got %d", m.Count())
	}
	if got := m.TotalValue(); got != 25 {
		t.Errorf("expected total unchanged at 25, got %v", got)
	}

	last := hook.LastEntry()
	if last == nil || last.Level != logrus.InfoLevel || last.Data["product_id"] != 1 {
		t.Errorf("expected info entry for duplicate id 1, got %+v", last)
	}
}

func TestRemove(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, widget, gadget)

	removed, err := m.Remove(1)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed.Name != "Widget" {
		t.Errorf("expected removed name 'Widget', got %q", removed.Name)
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 product after remove, got %d", m.Count())
	}

	if _, err := m.Remove(99); !errors.Is(err, repo.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("expected size unchanged at 1, got %d", m.Count())
	}
}

func TestUpdateQuantity(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, widget)

	updated, err := m.UpdateQuantity(1, 7)
	if err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if updated.Quantity != 7 || updated.Name != "Widget" || updated.Price != 2.5 {
		t.Errorf("expected only quantity to change, got %+v", updated)
	}

	if _, err := m.UpdateQuantity(5, 7); !errors.Is(err, repo.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	lines := m.List()
	if lines[3] != "ID: 1, Name: Widget, Quantity: 7, Price: 2.5" {
		t.Errorf("expected collection unchanged by miss, got %q", lines[3])
	}
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m, _ := newTestManager(t)
		lines := m.List()
		if len(lines) != 1 || lines[0] != EmptyListMessage {
			t.Errorf("expected [%q], got %v", EmptyListMessage, lines)
		}
	})

	t.Run("insertion order", func(t *testing.T) {
		m, _ := newTestManager(t)
		cable := models.Product{ID: 9, Name: "Cable", Quantity: 2, Price: 0.75}
		mustAdd(t, m, gadget, cable, widget)

		expected := []string{
			FrameRule,
			ListTitle,
			FrameRule,
			"ID: 2, Name: Gadget, Quantity: 4, Price: 5",
			"ID: 9, Name: Cable, Quantity: 2, Price: 0.75",
			"ID: 1, Name: Widget, Quantity: 10, Price: 2.5",
			FrameRule,
		}
		got := m.List()
		if len(got) != len(expected) {
			t.Fatalf("expected %d lines, got %d: %v", len(expected), len(got), got)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("line %d: expected %q, got %q", i, expected[i], got[i])
			}
		}
	})
}

func TestTotalValue(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		expected string
	}{
		{name: "empty", products: nil, expected: "0"},
		{name: "single", products: []models.Product{widget}, expected: "25"},
		{
			name: "no binary drift",
			products: []models.Product{
				{ID: 1, Name: "Dime bag", Quantity: 3, Price: 0.1},
				{ID: 2, Name: "Nickel bag", Quantity: 1, Price: 0.2},
			},
			expected: "0.5",
		},
		{
			name: "zero quantity contributes nothing",
			products: []models.Product{
				{ID: 1, Name: "Sold out", Quantity: 0, Price: 99.99},
				gadget,
			},
			expected: "20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			mustAdd(t, m, tt.products...)
			if got := m.TotalValueDecimal().String(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	m, _ := newTestManager(t)
	if got := m.TotalValue(); got != 0 {
		t.Errorf("expected 0 for empty inventory, got %v", got)
	}
}

func TestNewManager_NilLogger(t *testing.T) {
	m := NewManager(repo.NewInMemoryProductRepository(), nil)
	if err := m.Add(widget); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 product, got %d", m.Count())
	}
}
