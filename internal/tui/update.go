package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

// formFor returns the form controller of a screen, nil for screens
// without dialogs.
func (m *Model) formFor(s screenID) *form.Controller {
	switch s {
	case screenCustomers:
		return &m.customers.Form
	case screenProducts:
		return &m.products.Form
	case screenInventory:
		return &m.inventory.Form
	case screenOrders:
		return &m.orders.Form
	default:
		return nil
	}
}

func (m *Model) activeForm() *form.Controller {
	return m.formFor(m.active)
}

func (m *Model) modalOpen() bool {
	if m.analytics != nil || m.viewOrder != nil {
		return true
	}
	f := m.activeForm()
	return f != nil && f.Mode() != form.Idle
}

// Update is the event loop: key presses and command completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		if msg.screen != m.active {
			// Stale result for a screen we navigated away from. Nothing
			// was applied on the command goroutine, so dropping the
			// message really does discard the data.
			return m, nil
		}
		m.loading = false
		if msg.apply != nil {
			msg.apply()
		}
		if msg.err != nil {
			m.status = "Fetch failed, showing last known data (see log)"
		} else {
			m.status = ""
		}
		m.clampCursor()
		return m, nil

	case submittedMsg:
		f := m.formFor(msg.screen)
		if f == nil {
			return m, nil
		}
		if err := screens.Resolve(f, msg.apply, msg.err); err != nil {
			m.alert = userMessage(err)
			return m, nil
		}
		m.alert = ""
		m.inputs = nil
		m.fields = nil
		m.clampCursor()
		return m, nil

	case analyticsMsg:
		if msg.err != nil {
			m.alert = userMessage(msg.err)
			return m, nil
		}
		m.alert = ""
		m.analytics = &msg.analytics
		return m, nil

	case tea.KeyMsg:
		if m.modalOpen() {
			return m.updateModal(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

// userMessage keeps validation and mutation failures readable in the alert
// line; anything else passes through as-is.
func userMessage(err error) string {
	var ve *form.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var me *screens.MutationError
	if errors.As(err, &me) {
		return me.Message
	}
	return err.Error()
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// updateTable handles keys while no dialog is open.
func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6":
		m.active = screenID(msg.String()[0] - '1')
		m.cursor = 0
		m.alert = ""
		m.loading = true
		return m, m.loadActive()

	case "r":
		m.loading = true
		return m, m.loadActive()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case "t":
		if m.active == screenReports {
			switch m.reports.Type {
			case screens.SalesReport:
				m.reports.SetType(screens.InventoryReport)
			case screens.InventoryReport:
				m.reports.SetType(screens.CustomerReport)
			default:
				m.reports.SetType(screens.SalesReport)
			}
			m.cursor = 0
		}
		return m, nil

	case "a":
		return m.openAdd()

	case "e", "enter":
		return m.openRowAction()

	case "d":
		return m.openDelete()

	case "v":
		if m.active == screenProducts {
			if rows := m.products.Rows(); m.cursor < len(rows) {
				return m, m.loadAnalytics(rows[m.cursor])
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) openAdd() (tea.Model, tea.Cmd) {
	switch m.active {
	case screenCustomers:
		m.customers.OpenAdd()
		m.buildInputs(
			[]string{"name", "email", "phone"},
			[]string{"Name", "Email", "Phone"})
	case screenProducts:
		m.products.OpenAdd()
		m.buildInputs(
			[]string{"name", "category", "price"},
			[]string{"Name", "Category", "Price"})
	case screenInventory:
		m.inventory.OpenAdd()
		m.buildInputs(
			[]string{"productId", "stock", "reorderLevel"},
			[]string{"Product ID", "Stock", "Reorder Level"})
	}
	return m, nil
}

func (m Model) openRowAction() (tea.Model, tea.Cmd) {
	switch m.active {
	case screenCustomers:
		if rows := m.customers.Rows(); m.cursor < len(rows) {
			m.customers.OpenEdit(rows[m.cursor])
			m.buildInputs(
				[]string{"name", "email", "phone"},
				[]string{"Name", "Email", "Phone"})
		}
	case screenProducts:
		if rows := m.products.Rows(); m.cursor < len(rows) {
			m.products.OpenEdit(rows[m.cursor])
			m.buildInputs(
				[]string{"name", "category", "price"},
				[]string{"Name", "Category", "Price"})
		}
	case screenInventory:
		if rows := m.inventory.Rows(); m.cursor < len(rows) {
			m.inventory.OpenEdit(rows[m.cursor])
			m.buildInputs(
				[]string{"stock", "reorderLevel"},
				[]string{"Stock", "Reorder Level"})
		}
	case screenOrders:
		if rows := m.orders.Rows(); m.cursor < len(rows) {
			order := rows[m.cursor]
			m.viewOrder = &order
		}
	}
	return m, nil
}

func (m Model) openDelete() (tea.Model, tea.Cmd) {
	switch m.active {
	case screenCustomers:
		if rows := m.customers.Rows(); m.cursor < len(rows) {
			m.customers.OpenDelete(rows[m.cursor])
		}
	case screenProducts:
		if rows := m.products.Rows(); m.cursor < len(rows) {
			m.products.OpenDelete(rows[m.cursor])
		}
	case screenInventory:
		if rows := m.inventory.Rows(); m.cursor < len(rows) {
			m.inventory.OpenDelete(rows[m.cursor])
		}
	case screenOrders:
		if rows := m.orders.Rows(); m.cursor < len(rows) {
			m.orders.OpenDelete(rows[m.cursor])
		}
	}
	return m, nil
}

// buildInputs seeds one textinput per draft field from the open dialog.
func (m *Model) buildInputs(fields, labels []string) {
	f := m.activeForm()
	m.fields = fields
	m.labels = labels
	m.inputs = make([]textinput.Model, len(fields))
	for i, name := range fields {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.SetValue(f.Field(name))
		if i == 0 {
			in.Focus()
		}
		m.inputs[i] = in
	}
	m.focusIndex = 0
	m.alert = ""
}

// updateModal handles keys while a dialog is open.
func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Read-only overlays close on any of these.
	if m.analytics != nil || m.viewOrder != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.analytics = nil
			m.viewOrder = nil
		}
		return m, nil
	}

	f := m.activeForm()
	switch msg.String() {
	case "esc":
		if f.Mode() == form.Submitting {
			// An in-flight submit resolves only through its message.
			return m, nil
		}
		f.Cancel()
		m.inputs = nil
		m.fields = nil
		m.alert = ""
		return m, nil

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "enter":
		if f.Mode() == form.ConfirmingDelete {
			return m.submit()
		}
		if m.focusIndex < len(m.inputs)-1 {
			return m.moveFocus(1), nil
		}
		// Last field: push the typed values into the draft and submit.
		for i, name := range m.fields {
			f.SetField(name, m.inputs[i].Value())
		}
		return m.submit()
	}

	if f.Mode() == form.ConfirmingDelete || f.Mode() == form.Submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// submit stages the open dialog on the event loop and hands the network
// half to a command. A draft that fails to coerce never leaves this
// goroutine: the alert shows immediately and no command runs.
func (m Model) submit() (tea.Model, tea.Cmd) {
	commit, err := m.stageActive()
	if err != nil {
		m.alert = userMessage(err)
		return m, nil
	}
	if commit == nil {
		return m, nil
	}
	return m, m.commitActive(commit)
}

func (m Model) moveFocus(delta int) Model {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIndex].Focus()
	return m
}
