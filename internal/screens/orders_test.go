package screens_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

func TestOrdersLoadResolvesProductNamesOnce(t *testing.T) {
	srv, client := newEnv(t)
	aspirin := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	ibuprofen := srv.SeedProduct(models.Product{Name: "Ibuprofen", Category: "Pain Relief", Price: 7.25})
	customer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})

	first := srv.SeedOrder(models.Order{
		CustomerID:  customer.ID,
		OrderDate:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		TotalAmount: 25.23,
		OrderStatus: models.OrderCompleted,
		Details: []models.OrderDetail{
			{ProductID: aspirin.ID, Quantity: 1, PricePerUnit: 9.99},
			{ProductID: ibuprofen.ID, Quantity: 2, PricePerUnit: 7.62},
		},
	})
	srv.SeedOrder(models.Order{
		CustomerID:  customer.ID,
		OrderDate:   time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		TotalAmount: 9.99,
		OrderStatus: models.OrderPending,
		Details: []models.OrderDetail{
			{ProductID: aspirin.ID, Quantity: 1, PricePerUnit: 9.99},
		},
	})

	s := screens.NewOrders(client)
	require.NoError(t, s.Load(context.Background()))

	rows := s.Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, "John Doe", rows[0].Customer.Name, "customer arrives nested, no extra lookup")
	require.Len(t, rows[0].Details, 2)
	assert.Equal(t, "Aspirin", rows[0].Details[0].ProductName)
	assert.Equal(t, "Ibuprofen", rows[0].Details[1].ProductName)
	assert.True(t, rows[0].Details[0].Resolved)
	assert.Equal(t, "Aspirin", rows[1].Details[0].ProductName)

	// 1 list + one lookup per distinct product; the repeated aspirin line
	// rides the shared resolver.
	assert.Equal(t, int64(3), srv.Requests.Load())
}

func TestOrdersKeepsUnresolvedDetailLines(t *testing.T) {
	srv, client := newEnv(t)
	customer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})
	srv.SeedOrder(models.Order{
		CustomerID:  customer.ID,
		OrderDate:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		OrderStatus: models.OrderPending,
		Details: []models.OrderDetail{
			{ProductID: 99999, Quantity: 4, PricePerUnit: 2.5},
		},
	})

	s := screens.NewOrders(client)
	require.NoError(t, s.Load(context.Background()))

	rows := s.Rows()
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Details, 1)
	assert.False(t, rows[0].Details[0].Resolved)
	assert.Empty(t, rows[0].Details[0].ProductName)
	assert.Equal(t, 4, rows[0].Details[0].Quantity, "the line itself still renders")
}

func TestOrdersDelete(t *testing.T) {
	srv, client := newEnv(t)
	customer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})
	victim := srv.SeedOrder(models.Order{CustomerID: customer.ID, OrderDate: time.Now(), OrderStatus: models.OrderPending})
	keeper := srv.SeedOrder(models.Order{CustomerID: customer.ID, OrderDate: time.Now(), OrderStatus: models.OrderCompleted})

	s := screens.NewOrders(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	s.OpenDelete(s.Rows()[0])
	require.NoError(t, s.Submit(ctx))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, keeper.ID, rows[0].ID)
	assert.NotContains(t, srv.Orders, victim.ID)
	assert.Equal(t, form.Idle, s.Form.Mode())
}

func TestOrdersFailedDeleteKeepsRows(t *testing.T) {
	srv, client := newEnv(t)
	customer := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "1"})
	srv.SeedOrder(models.Order{CustomerID: customer.ID, OrderDate: time.Now(), OrderStatus: models.OrderPending})

	s := screens.NewOrders(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	before := s.Rows()

	s.OpenDelete(models.OrderView{Order: models.Order{ID: 77777}})
	err := s.Submit(ctx)

	var me *screens.MutationError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, before, s.Rows())
	assert.Equal(t, form.ConfirmingDelete, s.Form.Mode())
}
