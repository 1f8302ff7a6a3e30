package screens

import (
	"context"
	"fmt"
	"log"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/collection"
	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/join"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// Orders is the order management screen. Rows carry the nested customer
// from the API plus detail lines annotated with product names.
type Orders struct {
	client *api.Client

	Form form.Controller
	rows []models.OrderView
}

// NewOrders builds the orders screen controller.
func NewOrders(client *api.Client) *Orders {
	return &Orders{client: client}
}

// Rows returns the joined orders currently displayed.
func (s *Orders) Rows() []models.OrderView { return s.rows }

// Fetch retrieves all orders and resolves each detail line's product name,
// without touching the screen's state. Lookups are shared across the whole
// run: ten lines of the same product cost one request. A line whose lookup
// fails stays, unresolved.
func (s *Orders) Fetch(ctx context.Context) ([]models.OrderView, error) {
	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	names := join.NewResolver(func(ctx context.Context, id uint) (string, error) {
		product, err := s.client.GetProduct(ctx, id)
		return product.Name, err
	})

	views, _ := join.Collection(ctx, orders,
		func(ctx context.Context, order models.Order) (models.OrderView, error) {
			return s.joinDetails(ctx, order, names), nil
		},
		func(order models.Order) models.OrderView {
			return s.joinDetails(context.Background(), order, names)
		})
	return views, nil
}

// Apply replaces the displayed rows with a fetched list.
func (s *Orders) Apply(rows []models.OrderView) { s.rows = rows }

// Load is Fetch and Apply in one step, for callers without an event loop.
func (s *Orders) Load(ctx context.Context) error {
	rows, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(rows)
	return nil
}

func (s *Orders) joinDetails(ctx context.Context, order models.Order, names *join.Resolver[string]) models.OrderView {
	view := models.OrderView{Order: order, Details: make([]models.OrderDetailView, len(order.Details))}
	for i, detail := range order.Details {
		name, err := names.Resolve(ctx, detail.ProductID)
		if err != nil {
			log.Printf("orders join: product %d lookup failed: %v", detail.ProductID, err)
			view.Details[i] = models.OrderDetailView{OrderDetail: detail}
			continue
		}
		view.Details[i] = models.OrderDetailView{OrderDetail: detail, ProductName: name, Resolved: true}
	}
	return view
}

// OpenDelete opens the delete confirmation for the order.
func (s *Orders) OpenDelete(o models.OrderView) {
	s.Form.OpenDelete(o.ID)
}

// StageSubmit stages the delete confirmation; orders have no add/edit
// dialog. The returned commit performs only the API call; hand its outcome
// to Resolve on the goroutine that owns the screen.
func (s *Orders) StageSubmit() (Commit, error) {
	if s.Form.Mode() != form.ConfirmingDelete {
		return nil, nil
	}
	target := s.Form.Target()
	s.Form.BeginSubmit()
	return func(ctx context.Context) (func(), error) {
		if err := s.client.DeleteOrder(ctx, target); err != nil {
			return nil, mutationFailed(fmt.Sprintf("Failed to delete order %d", target), err)
		}
		return func() { s.rows = collection.Remove(s.rows, target) }, nil
	}, nil
}

// Submit stages, commits and resolves in one call, for callers without an
// event loop.
func (s *Orders) Submit(ctx context.Context) error {
	commit, err := s.StageSubmit()
	if err != nil || commit == nil {
		return err
	}
	apply, err := commit(ctx)
	return Resolve(&s.Form, apply, err)
}
