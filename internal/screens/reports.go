package screens

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/join"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// ReportType selects which report table is displayed.
type ReportType string

const (
	SalesReport     ReportType = "sales"
	InventoryReport ReportType = "inventory"
	CustomerReport  ReportType = "customers"
)

// SalesRow is one day of sales: decimal total plus transaction count.
type SalesRow struct {
	Date         time.Time
	TotalSales   decimal.Decimal
	Transactions int
}

// InventoryRow is one product's stock position.
type InventoryRow struct {
	ProductName  string
	Category     string
	Stock        int
	ReorderLevel int
	Status       models.StockStatus
}

// CustomerRow is one customer's purchase history summary.
type CustomerRow struct {
	CustomerName     string
	TotalPurchases   decimal.Decimal
	LastPurchaseDate time.Time
	Orders           int
}

// Reports derives the three report tables from live data. The original
// screen rendered hard-coded samples of these exact shapes; here they are
// computed from orders, inventory and per-customer order history.
type Reports struct {
	client *api.Client

	Type      ReportType
	Sales     []SalesRow
	Inventory []InventoryRow
	Customers []CustomerRow
}

// NewReports builds the reports screen controller, opening on sales.
func NewReports(client *api.Client) *Reports {
	return &Reports{client: client, Type: SalesReport}
}

// SetType switches the displayed report.
func (s *Reports) SetType(t ReportType) { s.Type = t }

// ReportsSnapshot is one recompute of all three report tables.
type ReportsSnapshot struct {
	Sales     []SalesRow
	Inventory []InventoryRow
	Customers []CustomerRow
}

// Fetch recomputes all three reports without touching the screen's state.
func (s *Reports) Fetch(ctx context.Context) (ReportsSnapshot, error) {
	sales, err := s.salesRows(ctx)
	if err != nil {
		return ReportsSnapshot{}, err
	}
	inventory, err := s.inventoryRows(ctx)
	if err != nil {
		return ReportsSnapshot{}, err
	}
	customers, err := s.customerRows(ctx)
	if err != nil {
		return ReportsSnapshot{}, err
	}
	return ReportsSnapshot{Sales: sales, Inventory: inventory, Customers: customers}, nil
}

// Apply installs a recomputed snapshot.
func (s *Reports) Apply(snap ReportsSnapshot) {
	s.Sales = snap.Sales
	s.Inventory = snap.Inventory
	s.Customers = snap.Customers
}

// Load is Fetch and Apply in one step, for callers without an event loop.
func (s *Reports) Load(ctx context.Context) error {
	snap, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(snap)
	return nil
}

// salesRows groups orders by calendar day of the order date.
func (s *Reports) salesRows(ctx context.Context) ([]SalesRow, error) {
	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	byDay := make(map[time.Time]*SalesRow)
	for _, order := range orders {
		day := order.OrderDate.Truncate(24 * time.Hour)
		row, ok := byDay[day]
		if !ok {
			row = &SalesRow{Date: day, TotalSales: decimal.Zero}
			byDay[day] = row
		}
		row.TotalSales = row.TotalSales.Add(decimal.NewFromFloat(order.TotalAmount))
		row.Transactions++
	}

	rows := make([]SalesRow, 0, len(byDay))
	for _, row := range byDay {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// inventoryRows reuses the inventory join to report stock positions.
func (s *Reports) inventoryRows(ctx context.Context) ([]InventoryRow, error) {
	items, err := s.client.ListInventory(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	views, joinErr := join.Collection(ctx, items,
		func(ctx context.Context, item models.Inventory) (InventoryRow, error) {
			product, err := s.client.GetProduct(ctx, item.ProductID)
			if err != nil {
				return InventoryRow{}, err
			}
			return InventoryRow{
				ProductName:  product.Name,
				Category:     product.Category,
				Stock:        item.Stock,
				ReorderLevel: item.ReorderLevel,
				Status:       item.Status(),
			}, nil
		},
		func(item models.Inventory) InventoryRow {
			return InventoryRow{
				Stock:        item.Stock,
				ReorderLevel: item.ReorderLevel,
				Status:       item.Status(),
			}
		})
	if joinErr != nil {
		log.Printf("inventory report join: some product lookups failed: %v", joinErr)
	}
	return views, nil
}

// customerRows joins each customer with their order history.
func (s *Reports) customerRows(ctx context.Context) ([]CustomerRow, error) {
	customers, err := s.client.ListCustomers(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	views, joinErr := join.Collection(ctx, customers,
		func(ctx context.Context, customer models.Customer) (CustomerRow, error) {
			orders, err := s.client.CustomerOrders(ctx, customer.ID)
			if err != nil {
				return CustomerRow{}, err
			}
			row := CustomerRow{CustomerName: customer.Name, TotalPurchases: decimal.Zero, Orders: len(orders)}
			for _, order := range orders {
				row.TotalPurchases = row.TotalPurchases.Add(decimal.NewFromFloat(order.TotalAmount))
				if order.OrderDate.After(row.LastPurchaseDate) {
					row.LastPurchaseDate = order.OrderDate
				}
			}
			return row, nil
		},
		func(customer models.Customer) CustomerRow {
			return CustomerRow{CustomerName: customer.Name, TotalPurchases: decimal.Zero}
		})
	if joinErr != nil {
		log.Printf("customer report join: some order lookups failed: %v", joinErr)
	}
	return views, nil
}
