package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/apitest"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

func newEnv(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, api.NewClient(ts.URL, 5*time.Second)
}

func TestListCustomersDecodesPascalCase(t *testing.T) {
	srv, client := newEnv(t)
	seeded := srv.SeedCustomer(models.Customer{Name: "John Doe", Email: "john@x.com", Phone: "555-0001"})

	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, seeded, customers[0])
}

func TestGetProductNotFound(t *testing.T) {
	_, client := newEnv(t)

	_, err := client.GetProduct(context.Background(), 999)
	require.Error(t, err)

	var re *api.RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
	assert.True(t, re.NotFound())
	assert.Equal(t, "products", re.Resource)
	assert.Equal(t, "get", re.Op)
	assert.Contains(t, re.Error(), "Product not found")
}

// The server returns PascalCase entities but the inventory mutation bodies
// are camelCase; both halves of that asymmetry are load-bearing.
func TestInventoryCreateSendsCamelCaseBody(t *testing.T) {
	var captured map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ID":1,"ProductID":3,"Stock":10,"ReorderLevel":5}`))
	}))
	t.Cleanup(ts.Close)

	client := api.NewClient(ts.URL, 5*time.Second)
	created, err := client.CreateInventory(context.Background(), api.InventoryInput{
		ProductID: 3, Stock: 10, ReorderLevel: 5,
	})
	require.NoError(t, err)

	assert.Contains(t, captured, "productID")
	assert.Contains(t, captured, "stock")
	assert.Contains(t, captured, "reorderLevel")
	assert.NotContains(t, captured, "Stock")
	assert.Equal(t, uint(1), created.ID)
}

func TestCustomerUpdateSendsPascalCaseBody(t *testing.T) {
	var captured map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		_, _ = w.Write([]byte(`{"ID":4,"Name":"Jane","Email":"jane@x.com","Phone":"555"}`))
	}))
	t.Cleanup(ts.Close)

	client := api.NewClient(ts.URL, 5*time.Second)
	_, err := client.UpdateCustomer(context.Background(), 4, api.CustomerInput{
		Name: "Jane", Email: "jane@x.com", Phone: "555",
	})
	require.NoError(t, err)

	assert.Contains(t, captured, "Name")
	assert.Contains(t, captured, "Email")
	assert.Contains(t, captured, "Phone")
}

func TestPayloadValidationBlocksRequest(t *testing.T) {
	srv, client := newEnv(t)

	_, err := client.CreateCustomer(context.Background(), api.CustomerInput{
		Name: "No Email", Email: "not-an-email", Phone: "555",
	})
	require.Error(t, err)

	var re *api.RequestError
	require.True(t, errors.As(err, &re))
	assert.Zero(t, re.StatusCode, "validation fails before the wire")
	assert.Zero(t, srv.Requests.Load(), "no request must reach the server")
}

func TestAggregateEndpoints(t *testing.T) {
	srv, client := newEnv(t)
	srv.SeedCustomer(models.Customer{Name: "A", Email: "a@x.com", Phone: "1"})
	srv.SeedCustomer(models.Customer{Name: "B", Email: "b@x.com", Phone: "2"})
	srv.SeedProduct(models.Product{Name: "Aspirin", Category: "Pain Relief", Price: 9.99})
	srv.SeedOrder(models.Order{CustomerID: 1, TotalAmount: 120.5, OrderStatus: models.OrderPending, OrderDate: time.Now().Add(-48 * time.Hour)})
	srv.SeedOrder(models.Order{CustomerID: 1, TotalAmount: 79.5, OrderStatus: models.OrderCompleted, OrderDate: time.Now()})

	ctx := context.Background()

	sales, err := client.TotalSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, sales)

	customers, err := client.TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), customers)

	products, err := client.TotalProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), products)

	today, err := client.TodayTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), today)
}

func TestDeleteOrderNotFound(t *testing.T) {
	_, client := newEnv(t)

	err := client.DeleteOrder(context.Background(), 12345)
	var re *api.RequestError
	require.True(t, errors.As(err, &re))
	assert.True(t, re.NotFound())
}
