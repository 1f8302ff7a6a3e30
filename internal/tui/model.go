// Package tui is the terminal front end of the dashboard: six screens,
// each a table over its controller's rows, with add/edit/delete dialogs
// driven by the controllers' form state machines.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

type screenID int

const (
	screenHome screenID = iota
	screenCustomers
	screenProducts
	screenInventory
	screenOrders
	screenReports
)

var screenTitles = []string{"Home", "Customers", "Products", "Inventory", "Orders", "Reports"}

// Messages flowing back from commands. Commands only talk to the network;
// the fetched data rides inside the message as an unapplied fold, and
// Update runs it on the event-loop goroutine. The screen controllers are
// therefore never touched from two goroutines.

type loadedMsg struct {
	screen screenID
	apply  func() // installs the fetched data; nil when the fetch failed
	err    error
}

type submittedMsg struct {
	screen screenID
	apply  func() // folds the confirmed mutation; nil when it failed
	err    error
}

type analyticsMsg struct {
	analytics screens.ProductAnalytics
	err       error
}

// Model is the bubbletea model for the whole dashboard.
type Model struct {
	client *api.Client

	home      *screens.Home
	customers *screens.Customers
	products  *screens.Products
	inventory *screens.Inventory
	orders    *screens.Orders
	reports   *screens.Reports

	active  screenID
	cursor  int
	loading bool
	alert   string // mutation/validation failure shown to the user
	status  string // transient success line

	// Modal form inputs; parallel to labels/fields.
	inputs     []textinput.Model
	fields     []string
	labels     []string
	focusIndex int

	analytics *screens.ProductAnalytics
	viewOrder *models.OrderView

	width  int
	height int
}

// New builds the dashboard model around one API client.
func New(client *api.Client) Model {
	return Model{
		client:    client,
		home:      screens.NewHome(client),
		customers: screens.NewCustomers(client),
		products:  screens.NewProducts(client),
		inventory: screens.NewInventory(client),
		orders:    screens.NewOrders(client),
		reports:   screens.NewReports(client),
		active:    screenHome,
	}
}

// Init loads the homepage.
func (m Model) Init() tea.Cmd {
	return m.loadActive()
}

// loadActive refreshes the active screen off the event loop. Each branch
// fetches without touching the controller and wraps the result in a fold
// for Update to apply.
func (m Model) loadActive() tea.Cmd {
	screen := m.active
	switch screen {
	case screenHome:
		base := m.home.Snapshot()
		return func() tea.Msg {
			snap, err := m.home.Fetch(context.Background(), base)
			// Partial refreshes are still worth applying.
			return loadedMsg{screen: screen, apply: func() { m.home.Apply(snap) }, err: err}
		}
	case screenCustomers:
		return func() tea.Msg {
			rows, err := m.customers.Fetch(context.Background())
			if err != nil {
				return loadedMsg{screen: screen, err: err}
			}
			return loadedMsg{screen: screen, apply: func() { m.customers.Apply(rows) }}
		}
	case screenProducts:
		return func() tea.Msg {
			rows, err := m.products.Fetch(context.Background())
			if err != nil {
				return loadedMsg{screen: screen, err: err}
			}
			return loadedMsg{screen: screen, apply: func() { m.products.Apply(rows) }}
		}
	case screenInventory:
		return func() tea.Msg {
			snap, err := m.inventory.Fetch(context.Background())
			if err != nil {
				return loadedMsg{screen: screen, err: err}
			}
			return loadedMsg{screen: screen, apply: func() { m.inventory.Apply(snap) }}
		}
	case screenOrders:
		return func() tea.Msg {
			rows, err := m.orders.Fetch(context.Background())
			if err != nil {
				return loadedMsg{screen: screen, err: err}
			}
			return loadedMsg{screen: screen, apply: func() { m.orders.Apply(rows) }}
		}
	case screenReports:
		return func() tea.Msg {
			snap, err := m.reports.Fetch(context.Background())
			if err != nil {
				return loadedMsg{screen: screen, err: err}
			}
			return loadedMsg{screen: screen, apply: func() { m.reports.Apply(snap) }}
		}
	}
	return nil
}

// stageActive coerces the active dialog's draft on the event loop and
// returns the staged network half. A validation failure comes back as the
// error with nothing staged.
func (m Model) stageActive() (screens.Commit, error) {
	switch m.active {
	case screenCustomers:
		return m.customers.StageSubmit()
	case screenProducts:
		return m.products.StageSubmit()
	case screenInventory:
		return m.inventory.StageSubmit()
	case screenOrders:
		return m.orders.StageSubmit()
	}
	return nil, nil
}

// commitActive runs the staged network call off the event loop.
func (m Model) commitActive(commit screens.Commit) tea.Cmd {
	screen := m.active
	return func() tea.Msg {
		apply, err := commit(context.Background())
		return submittedMsg{screen: screen, apply: apply, err: err}
	}
}

// loadAnalytics fetches the analytics aggregate for one product.
func (m Model) loadAnalytics(p models.Product) tea.Cmd {
	return func() tea.Msg {
		a, err := m.products.Analytics(context.Background(), p)
		return analyticsMsg{analytics: a, err: err}
	}
}

// rowCount is how many rows the active table currently has.
func (m Model) rowCount() int {
	switch m.active {
	case screenCustomers:
		return len(m.customers.Rows())
	case screenProducts:
		return len(m.products.Rows())
	case screenInventory:
		return len(m.inventory.Rows())
	case screenOrders:
		return len(m.orders.Rows())
	case screenReports:
		switch m.reports.Type {
		case screens.SalesReport:
			return len(m.reports.Sales)
		case screens.InventoryReport:
			return len(m.reports.Inventory)
		default:
			return len(m.reports.Customers)
		}
	default:
		return 0
	}
}
