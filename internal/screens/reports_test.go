package screens_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

func TestSalesReportGroupsByDay(t *testing.T) {
	srv, client := newEnv(t)
	customer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})

	// Two orders on May 1st, one on May 2nd (UTC).
	srv.SeedOrder(models.Order{CustomerID: customer.ID, TotalAmount: 120.5, OrderStatus: models.OrderCompleted,
		OrderDate: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)})
	srv.SeedOrder(models.Order{CustomerID: customer.ID, TotalAmount: 79.5, OrderStatus: models.OrderCompleted,
		OrderDate: time.Date(2024, 5, 1, 18, 15, 0, 0, time.UTC)})
	srv.SeedOrder(models.Order{CustomerID: customer.ID, TotalAmount: 10.25, OrderStatus: models.OrderPending,
		OrderDate: time.Date(2024, 5, 2, 11, 0, 0, 0, time.UTC)})

	s := screens.NewReports(client)
	require.NoError(t, s.Load(context.Background()))

	require.Len(t, s.Sales, 2)
	first, second := s.Sales[0], s.Sales[1]
	assert.True(t, first.Date.Before(second.Date), "days come out in order")
	assert.Equal(t, "200.00", first.TotalSales.StringFixed(2))
	assert.Equal(t, 2, first.Transactions)
	assert.Equal(t, "10.25", second.TotalSales.StringFixed(2))
	assert.Equal(t, 1, second.Transactions)
}

func TestInventoryReportRows(t *testing.T) {
	srv, client := newEnv(t)
	aspirin := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	srv.SeedInventory(models.Inventory{ProductID: aspirin.ID, Stock: 0, ReorderLevel: 20})

	s := screens.NewReports(client)
	require.NoError(t, s.Load(context.Background()))

	require.Len(t, s.Inventory, 1)
	row := s.Inventory[0]
	assert.Equal(t, "Aspirin", row.ProductName)
	assert.Equal(t, "Pain Relief", row.Category)
	assert.Equal(t, models.OutOfStock, row.Status)
}

func TestCustomerReportSummarisesOrderHistory(t *testing.T) {
	srv, client := newEnv(t)
	buyer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})
	srv.SeedCustomer(models.Customer{Name: "Jane Smith", Email: "jane@x.com", Phone: "2"})

	last := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	srv.SeedOrder(models.Order{CustomerID: buyer.ID, TotalAmount: 120.5, OrderStatus: models.OrderCompleted,
		OrderDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)})
	srv.SeedOrder(models.Order{CustomerID: buyer.ID, TotalAmount: 79.5, OrderStatus: models.OrderCompleted,
		OrderDate: last})

	s := screens.NewReports(client)
	require.NoError(t, s.Load(context.Background()))

	require.Len(t, s.Customers, 2)

	byName := make(map[string]screens.CustomerRow, 2)
	for _, row := range s.Customers {
		byName[row.CustomerName] = row
	}

	john := byName["John Doe"]
	assert.Equal(t, "200.00", john.TotalPurchases.StringFixed(2))
	assert.Equal(t, 2, john.Orders)
	assert.True(t, john.LastPurchaseDate.Equal(last))

	jane := byName["Jane Smith"]
	assert.Equal(t, "0.00", jane.TotalPurchases.StringFixed(2))
	assert.Zero(t, jane.Orders)
	assert.True(t, jane.LastPurchaseDate.IsZero())
}

func TestReportTypeSwitch(t *testing.T) {
	_, client := newEnv(t)
	s := screens.NewReports(client)
	assert.Equal(t, screens.SalesReport, s.Type)
	s.SetType(screens.CustomerReport)
	assert.Equal(t, screens.CustomerReport, s.Type)
}
