package screens_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
	"github.com/abcpharmacy/backoffice-golang/internal/screens"
)

func TestInventoryLoadJoinsProducts(t *testing.T) {
	srv, client := newEnv(t)
	aspirin := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	ibuprofen := srv.SeedProduct(models.Product{Name: "Ibuprofen", Category: "Pain Relief", Price: 7.25})

	first := srv.SeedInventory(models.Inventory{ProductID: aspirin.ID, Stock: 50, ReorderLevel: 20})
	second := srv.SeedInventory(models.Inventory{ProductID: ibuprofen.ID, Stock: 15, ReorderLevel: 25})
	// A record whose product no longer exists.
	orphan := srv.SeedInventory(models.Inventory{ProductID: 99999, Stock: 5, ReorderLevel: 10})

	s := screens.NewInventory(client)
	require.NoError(t, s.Load(context.Background()))

	rows := s.Rows()
	require.Len(t, rows, 3, "rows with failed lookups are kept, not dropped")

	assert.Equal(t, first.ID, rows[0].ID)
	assert.True(t, rows[0].Resolved)
	assert.Equal(t, "Aspirin", rows[0].ProductName)
	assert.Equal(t, "Pain Relief", rows[0].Category)
	assert.Equal(t, 9.99, rows[0].Price)
	assert.Equal(t, models.InStock, s.Status(rows[0].Inventory))

	assert.Equal(t, second.ID, rows[1].ID)
	assert.Equal(t, "Ibuprofen", rows[1].ProductName)
	assert.Equal(t, models.LowStock, s.Status(rows[1].Inventory))

	assert.Equal(t, orphan.ID, rows[2].ID)
	assert.False(t, rows[2].Resolved, "unresolved reference renders a placeholder, not silence")
	assert.Empty(t, rows[2].ProductName)
}

func TestInventoryAddResolvesProductFromPicker(t *testing.T) {
	srv, client := newEnv(t)
	product := srv.SeedProduct(models.Product{Name: "Paracetamol", Category: "Pain Relief", Price: 4.5})

	s := screens.NewInventory(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	require.Empty(t, s.Rows())

	s.OpenAdd()
	s.Form.SetField("productId", strconv.Itoa(int(product.ID)))
	s.Form.SetField("stock", "40")
	s.Form.SetField("reorderLevel", "10")
	require.NoError(t, s.Submit(ctx))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.NotZero(t, rows[0].ID)
	assert.Equal(t, 40, rows[0].Stock)
	assert.Equal(t, 10, rows[0].ReorderLevel)
	assert.True(t, rows[0].Resolved, "a fresh row resolves its product from the cached list")
	assert.Equal(t, "Paracetamol", rows[0].ProductName)
}

func TestInventoryEditKeepsResolvedProductFields(t *testing.T) {
	srv, client := newEnv(t)
	product := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	item := srv.SeedInventory(models.Inventory{ProductID: product.ID, Stock: 50, ReorderLevel: 20})

	s := screens.NewInventory(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	s.OpenEdit(s.Rows()[0])
	assert.Equal(t, "50", s.Form.Field("stock"))
	s.Form.SetField("stock", "8")
	require.NoError(t, s.Submit(ctx))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 8, rows[0].Stock)
	assert.Equal(t, "Aspirin", rows[0].ProductName, "product fields survive the update")
	assert.Equal(t, models.LowStock, s.Status(rows[0].Inventory))
	assert.Equal(t, 8, srv.Inventory[item.ID].Stock)
}

func TestInventoryRejectsFractionalStock(t *testing.T) {
	srv, client := newEnv(t)
	product := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	srv.SeedInventory(models.Inventory{ProductID: product.ID, Stock: 50, ReorderLevel: 20})

	s := screens.NewInventory(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	s.OpenEdit(s.Rows()[0])
	s.Form.SetField("stock", "12.5")
	requestsBefore := srv.Requests.Load()

	err := s.Submit(ctx)

	var ve *form.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "stock", ve.Field)
	assert.Equal(t, requestsBefore, srv.Requests.Load())
	assert.Equal(t, form.Editing, s.Form.Mode())
	assert.Equal(t, 50, s.Rows()[0].Stock)
}

func TestInventoryRefreshLeavesDisplayedRowsAlone(t *testing.T) {
	srv, client := newEnv(t)
	product := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	srv.SeedInventory(models.Inventory{ProductID: product.ID, Stock: 50, ReorderLevel: 20})

	s := screens.NewInventory(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	before := s.Rows()

	// A refresh runs off the goroutine that renders the rows; reading
	// while the fetch is in flight must stay safe because Fetch touches
	// none of the screen's state.
	stop := make(chan struct{})
	var reads sync.WaitGroup
	reads.Add(1)
	go func() {
		defer reads.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = s.Rows()
				_ = s.Products()
			}
		}
	}()

	snap, err := s.Fetch(ctx)
	close(stop)
	reads.Wait()
	require.NoError(t, err)
	assert.Equal(t, before, s.Rows(), "fetching alone must not mutate the screen")

	s.Apply(snap)
	assert.Equal(t, before, s.Rows(), "refreshing unchanged data is a no-op")
}

func TestInventoryDelete(t *testing.T) {
	srv, client := newEnv(t)
	product := srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	srv.SeedInventory(models.Inventory{ProductID: product.ID, Stock: 50, ReorderLevel: 20})

	s := screens.NewInventory(client)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	s.OpenDelete(s.Rows()[0])
	require.NoError(t, s.Submit(ctx))
	assert.Empty(t, s.Rows())
	assert.Empty(t, srv.Inventory)
}
