package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/inventory"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

var defaultOptions = Options{MinProductID: 1}

// runMenu feeds input to a fresh menu and returns what it printed.
func runMenu(t *testing.T, input string, opts Options) (string, *inventory.Manager) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	manager := inventory.NewManager(repo.NewInMemoryProductRepository(), logger)

	var buf bytes.Buffer
	menu := NewMenu(manager, strings.NewReader(input), NewOutput(&buf, false, false), logger, opts)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	return buf.String(), manager
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
