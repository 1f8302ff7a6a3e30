package tui

import (
	"fmt"
	"strings"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

const dateFormat = "Jan 2, 2006 3:04 PM"

// View renders the active screen, or its open dialog on top of nothing
// else (the original dashboard's modals covered the table too).
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" ABC Pharmacy — Back Office ") + "  ")
	for i, title := range screenTitles {
		style := tabStyle
		if screenID(i) == m.active {
			style = activeTabStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%d %s", i+1, title)))
	}
	b.WriteString("\n\n")

	switch {
	case m.analytics != nil:
		b.WriteString(m.viewAnalytics())
	case m.viewOrder != nil:
		b.WriteString(m.viewOrderDetail())
	case m.modalOpen():
		b.WriteString(m.viewDialog())
	case m.loading:
		b.WriteString("  Loading...\n")
	default:
		b.WriteString(m.viewTable())
	}

	if m.alert != "" {
		b.WriteString("\n" + alertStyle.Render("  ! "+m.alert) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render("  "+m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m Model) helpLine() string {
	if m.modalOpen() {
		f := m.activeForm()
		if f != nil && f.Mode() == form.ConfirmingDelete {
			return "  enter confirm • esc cancel"
		}
		return "  tab next field • enter submit • esc cancel"
	}
	switch m.active {
	case screenHome:
		return "  1-6 screens • r refresh • q quit"
	case screenOrders:
		return "  ↑/↓ move • enter view • d delete • r refresh • q quit"
	case screenProducts:
		return "  ↑/↓ move • a add • e edit • d delete • v analytics • r refresh • q quit"
	case screenReports:
		return "  t switch report • r refresh • q quit"
	default:
		return "  ↑/↓ move • a add • e edit • d delete • r refresh • q quit"
	}
}

func (m Model) viewTable() string {
	switch m.active {
	case screenHome:
		return m.viewHome()
	case screenCustomers:
		return m.viewCustomers()
	case screenProducts:
		return m.viewProducts()
	case screenInventory:
		return m.viewInventory()
	case screenOrders:
		return m.viewOrders()
	case screenReports:
		return m.viewReports()
	}
	return ""
}

func (m Model) rowPrefix(i int) string {
	if i == m.cursor {
		return "> "
	}
	return "  "
}

func (m Model) viewHome() string {
	var b strings.Builder
	s := m.home.Stats
	b.WriteString(fmt.Sprintf("  Total Sales: $%.2f   Customers: %d   Products: %d   Transactions Today: %d\n\n",
		s.TotalSales, s.TotalCustomers, s.TotalProducts, s.TodayTransactions))

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-24s %-22s %12s  %s", "Customer", "Order Date", "Amount", "Status")) + "\n")
	for _, order := range m.home.RecentOrders {
		b.WriteString(fmt.Sprintf("  %-24s %-22s %12.2f  %s\n",
			order.Customer.Name, order.OrderDate.Format(dateFormat), order.TotalAmount, orderBadge(order.OrderStatus)))
	}

	b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("  %-28s %8s %14s  %s", "Low Stock Product", "Stock", "Reorder At", "Status")) + "\n")
	for _, item := range m.home.LowStock {
		name := item.ProductName
		if !item.Resolved {
			name = fmt.Sprintf("(product %d)", item.ProductID)
		}
		b.WriteString(fmt.Sprintf("  %-28s %8d %14d  %s\n",
			name, item.Stock, item.ReorderLevel, stockBadge(item.Status())))
	}
	return b.String()
}

func (m Model) viewCustomers() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-24s %-30s %s", "ID", "Name", "Email", "Phone")) + "\n")
	for i, c := range m.customers.Rows() {
		line := fmt.Sprintf("%s%-6d %-24s %-30s %s", m.rowPrefix(i), c.ID, c.Name, c.Email, c.Phone)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewProducts() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-28s %-20s %10s", "ID", "Name", "Category", "Price")) + "\n")
	for i, p := range m.products.Rows() {
		line := fmt.Sprintf("%s%-6d %-28s %-20s %10.2f", m.rowPrefix(i), p.ID, p.Name, p.Category, p.Price)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewInventory() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-28s %-18s %8s %12s  %s", "Product", "Category", "Stock", "Reorder At", "Status")) + "\n")
	for i, item := range m.inventory.Rows() {
		name := item.ProductName
		if !item.Resolved {
			name = fmt.Sprintf("(product %d)", item.ProductID)
		}
		line := fmt.Sprintf("%s%-28s %-18s %8d %12d  %s",
			m.rowPrefix(i), name, item.Category, item.Stock, item.ReorderLevel, stockBadge(m.inventory.Status(item.Inventory)))
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewOrders() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-24s %-22s %12s  %s", "ID", "Customer", "Order Date", "Amount", "Status")) + "\n")
	for i, order := range m.orders.Rows() {
		line := fmt.Sprintf("%s%-6d %-24s %-22s %12.2f  %s",
			m.rowPrefix(i), order.ID, order.Customer.Name, order.OrderDate.Format(dateFormat),
			order.TotalAmount, orderBadge(order.OrderStatus))
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewReports() string {
	var b strings.Builder
	switch m.reports.Type {
	case screens.SalesReport:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-16s %14s %16s", "Date", "Total Sales", "Transactions")) + "\n")
		for _, row := range m.reports.Sales {
			b.WriteString(fmt.Sprintf("  %-16s %14s %16d\n",
				row.Date.Format("2006-01-02"), "$"+row.TotalSales.StringFixed(2), row.Transactions))
		}
	case screens.InventoryReport:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-28s %-18s %8s %12s  %s", "Product", "Category", "Stock", "Reorder At", "Status")) + "\n")
		for _, row := range m.reports.Inventory {
			b.WriteString(fmt.Sprintf("  %-28s %-18s %8d %12d  %s\n",
				row.ProductName, row.Category, row.Stock, row.ReorderLevel, stockBadge(row.Status)))
		}
	default:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-24s %16s %8s  %s", "Customer", "Total Purchases", "Orders", "Last Purchase")) + "\n")
		for _, row := range m.reports.Customers {
			last := "-"
			if !row.LastPurchaseDate.IsZero() {
				last = row.LastPurchaseDate.Format("2006-01-02")
			}
			b.WriteString(fmt.Sprintf("  %-24s %16s %8d  %s\n",
				row.CustomerName, "$"+row.TotalPurchases.StringFixed(2), row.Orders, last))
		}
	}
	return b.String()
}

func (m Model) viewDialog() string {
	f := m.activeForm()
	var b strings.Builder

	switch f.Mode() {
	case form.ConfirmingDelete:
		b.WriteString(fmt.Sprintf("Confirm Delete\n\nAre you sure you want to delete record %d?", f.Target()))
	case form.Submitting:
		b.WriteString("Saving...")
	default:
		title := "Edit"
		if f.Mode() == form.Adding {
			title = "Add"
		}
		b.WriteString(title + "\n\n")
		for i, in := range m.inputs {
			b.WriteString(fmt.Sprintf("%s\n%s\n\n", m.labels[i], in.View()))
		}
		// The add-inventory dialog's product picker: list what's selectable.
		if m.active == screenInventory && f.Mode() == form.Adding {
			b.WriteString("Products:\n")
			for _, p := range m.inventory.Products() {
				b.WriteString(fmt.Sprintf("  %d — %s\n", p.ID, p.Name))
			}
		}
	}
	return boxStyle.Render(b.String()) + "\n"
}

func (m Model) viewAnalytics() string {
	a := m.analytics
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Analytics — %s\n\n", a.ProductName))
	b.WriteString(fmt.Sprintf("Total Quantity Sold: %d\n", a.TotalQuantity))
	b.WriteString(fmt.Sprintf("Total Revenue:       $%s\n", a.TotalRevenue.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Average Unit Price:  $%s\n", a.AveragePrice.StringFixed(2)))
	return boxStyle.Render(b.String()) + "\n"
}

func (m Model) viewOrderDetail() string {
	o := m.viewOrder
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Order %d\n\n", o.ID))
	b.WriteString(fmt.Sprintf("Customer:     %s\n", o.Customer.Name))
	b.WriteString(fmt.Sprintf("Order Date:   %s\n", o.OrderDate.Format(dateFormat)))
	b.WriteString(fmt.Sprintf("Total Amount: $%.2f\n", o.TotalAmount))
	b.WriteString(fmt.Sprintf("Status:       %s\n\n", orderBadge(o.OrderStatus)))

	b.WriteString(fmt.Sprintf("%-28s %10s %14s\n", "Product", "Quantity", "Unit Price"))
	for _, d := range o.Details {
		name := d.ProductName
		if !d.Resolved {
			name = fmt.Sprintf("(product %d)", d.ProductID)
		}
		b.WriteString(fmt.Sprintf("%-28s %10d %14.2f\n", name, d.Quantity, d.PricePerUnit))
	}
	return boxStyle.Render(b.String()) + "\n"
}
