// Package console implements the interactive text menu over the inventory.
package console

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/inventory"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
	"github.com/GarnetAerisMarquez/retail-inventory/internal/repo"
)

// MenuChoice is a numbered entry of the main menu.
type MenuChoice int

const (
	ChoiceAdd MenuChoice = iota + 1
	ChoiceRemove
	ChoiceUpdate
	ChoiceList
	ChoiceTotal
	ChoiceExit
)

var menuLabels = []struct {
	choice MenuChoice
	label  string
}{
	{ChoiceAdd, "Add Product"},
	{ChoiceRemove, "Remove Product"},
	{ChoiceUpdate, "Update Product Quantity"},
	{ChoiceList, "List Products"},
	{ChoiceTotal, "Get Total Inventory Value"},
	{ChoiceExit, "Exit"},
}

const (
	titleRule = "===================================="
	title     = " Retail Inventory Management System "
)

// Inventory is the set of operations the menu dispatches to.
type Inventory interface {
	Add(p models.Product) error
	Remove(id int) (models.Product, error)
	UpdateQuantity(id int, quantity int) (models.Product, error)
	List() []string
	TotalValueDecimal() decimal.Decimal
}

// Options tunes the menu loop.
type Options struct {
	// MinProductID is the smallest accepted product ID.
	MinProductID int
	// Pause waits for Enter after each action so its result stays on screen.
	Pause bool
}

// Menu drives the read-dispatch-print loop until the user exits.
type Menu struct {
	inv    Inventory
	prompt *Prompter
	out    *Output
	log    logrus.FieldLogger
	opts   Options
}

func NewMenu(inv Inventory, in io.Reader, out *Output, log logrus.FieldLogger, opts Options) *Menu {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Menu{
		inv:    inv,
		prompt: NewPrompter(in, out),
		out:    out,
		log:    log,
		opts:   opts,
	}
}

// Run shows the menu until the user picks Exit, input ends or ctx is done.
// None of these are failures, so Run returns nil for all of them.
func (m *Menu) Run(ctx context.Context) error {
	m.log.Debug("menu started")
	for {
		if err := ctx.Err(); err != nil {
			m.log.WithError(err).Info("menu interrupted")
			return nil
		}

		done, err := m.step()
		if errors.Is(err, io.EOF) {
			m.log.Info("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			m.log.Debug("menu exited")
			return nil
		}
	}
}

// step runs one MenuDisplay -> AwaitingChoice -> flow cycle and reports
// whether the user asked to exit.
func (m *Menu) step() (bool, error) {
	m.out.Clear()
	m.showMenu()

	raw, err := m.prompt.Line()
	if err != nil {
		return false, err
	}

	choice, err := parseMenuChoice(raw)
	switch {
	case errors.Is(err, ErrParse):
		m.log.WithError(err).Debug("menu input rejected")
		m.out.Println("Invalid input. Please enter a number.")
	case errors.Is(err, ErrInvalidMenuChoice):
		m.log.WithError(err).Debug("menu input rejected")
		m.out.Clear()
		m.out.Println("Invalid choice. Try again.")
	default:
		m.out.Clear()
		if choice == ChoiceExit {
			m.out.Println("Exiting program.")
			return true, nil
		}
		if err := m.dispatch(choice); err != nil {
			return false, err
		}
	}

	return false, m.pause()
}

func (m *Menu) showMenu() {
	m.out.Println()
	m.out.Accent(titleRule)
	m.out.Accent(title)
	m.out.Accent(titleRule)
	for _, item := range menuLabels {
		m.out.Printf("%d. %s\n", item.choice, item.label)
	}
	m.out.Printf("Enter your choice: ")
}

func (m *Menu) dispatch(choice MenuChoice) error {
	m.log.WithField("choice", int(choice)).Debug("menu choice")
	switch choice {
	case ChoiceAdd:
		return m.addFlow()
	case ChoiceRemove:
		return m.removeFlow()
	case ChoiceUpdate:
		return m.updateFlow()
	case ChoiceList:
		m.listFlow()
	case ChoiceTotal:
		m.out.Printf("Total Inventory Value: %s\n", m.inv.TotalValueDecimal().String())
	}
	return nil
}

func (m *Menu) addFlow() error {
	id, err := m.prompt.Int("Enter Product ID: ", "id", m.opts.MinProductID)
	if err != nil {
		return err
	}
	name, err := m.prompt.Text("Enter Product Name: ", "name")
	if err != nil {
		return err
	}
	quantity, err := m.prompt.Int("Enter Quantity: ", "quantity", 0)
	if err != nil {
		return err
	}
	price, err := m.prompt.Float("Enter Price: ", "price", 0)
	if err != nil {
		return err
	}

	p := models.Product{ID: id, Name: name, Quantity: quantity, Price: price}
	if err := m.inv.Add(p); err != nil {
		m.reportFailure(err)
		return nil
	}
	m.out.Printf("Product '%s' added successfully.\n", p.Name)
	return nil
}

func (m *Menu) removeFlow() error {
	id, err := m.prompt.Int("Enter Product ID to remove: ", "id", m.opts.MinProductID)
	if err != nil {
		return err
	}
	removed, err := m.inv.Remove(id)
	if err != nil {
		m.reportFailure(err)
		return nil
	}
	m.out.Printf("Product '%s' removed.\n", removed.Name)
	return nil
}

func (m *Menu) updateFlow() error {
	id, err := m.prompt.Int("Enter Product ID to update: ", "id", m.opts.MinProductID)
	if err != nil {
		return err
	}
	quantity, err := m.prompt.Int("Enter new Quantity: ", "quantity", 0)
	if err != nil {
		return err
	}
	updated, err := m.inv.UpdateQuantity(id, quantity)
	if err != nil {
		m.reportFailure(err)
		return nil
	}
	m.out.Printf("Quantity for product '%s' updated.\n", updated.Name)
	return nil
}

func (m *Menu) listFlow() {
	lines := m.inv.List()
	if len(lines) == 1 && lines[0] == inventory.EmptyListMessage {
		m.out.Println(lines[0])
		return
	}

	m.out.Println()
	for _, line := range lines {
		if inventory.IsFrameLine(line) {
			m.out.Accent(line)
			continue
		}
		m.out.Println(line)
	}
	m.out.Println()
}

func (m *Menu) reportFailure(err error) {
	switch {
	case errors.Is(err, repo.ErrDuplicateProductID):
		m.out.Println("Product ID already exists. Please choose a unique ID.")
	case errors.Is(err, repo.ErrProductNotFound):
		m.out.Println("Product not found.")
	default:
		m.out.Printf("Operation failed: %v\n", err)
	}
}

func (m *Menu) pause() error {
	if !m.opts.Pause {
		return nil
	}
	m.out.Println()
	m.out.Println("Press Enter to continue...")
	_, err := m.prompt.Line()
	return err
}
