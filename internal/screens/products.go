package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/collection"
	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// ErrNoAnalytics means a product has no order lines to aggregate.
var ErrNoAnalytics = errors.New("no order details available for this product")

// ProductAnalytics is the per-product sales aggregate shown in the
// analytics dialog. Money math runs on decimals, not floats.
type ProductAnalytics struct {
	ProductName   string
	Lines         []models.OrderDetail
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	AveragePrice  decimal.Decimal
}

// Products is the product management screen: list, add, edit, delete and
// the analytics dialog.
type Products struct {
	client *api.Client

	Form form.Controller
	rows []models.Product
}

// NewProducts builds the products screen controller.
func NewProducts(client *api.Client) *Products {
	return &Products{client: client}
}

// Rows returns the products currently displayed.
func (s *Products) Rows() []models.Product { return s.rows }

// Fetch retrieves the product list without touching the screen's state,
// so it can run off the goroutine that owns the screen.
func (s *Products) Fetch(ctx context.Context) ([]models.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}
	return products, nil
}

// Apply replaces the displayed rows with a fetched list.
func (s *Products) Apply(rows []models.Product) { s.rows = rows }

// Load is Fetch and Apply in one step, for callers without an event loop.
// On failure the previous rows stay.
func (s *Products) Load(ctx context.Context) error {
	rows, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(rows)
	return nil
}

// OpenAdd opens the add dialog with an empty draft.
func (s *Products) OpenAdd() {
	s.Form.OpenAdd(form.Draft{"name": "", "category": "", "price": ""})
}

// OpenEdit opens the edit dialog. Price converts to its editable string form.
func (s *Products) OpenEdit(p models.Product) {
	s.Form.OpenEdit(p.ID, form.Draft{
		"name":     p.Name,
		"category": p.Category,
		"price":    decimal.NewFromFloat(p.Price).String(),
	})
}

// OpenDelete opens the delete confirmation for the row.
func (s *Products) OpenDelete(p models.Product) {
	s.Form.OpenDelete(p.ID)
}

// StageSubmit coerces the open dialog's draft and moves the form to
// Submitting. A price that does not parse as a decimal is a validation
// error: the dialog stays open and nothing is staged. The returned commit
// performs only the API call; hand its outcome to Resolve on the goroutine
// that owns the screen.
func (s *Products) StageSubmit() (Commit, error) {
	switch s.Form.Mode() {
	case form.Adding:
		input, err := s.draftInput()
		if err != nil {
			return nil, err
		}
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			created, err := s.client.CreateProduct(ctx, input)
			if err != nil {
				return nil, mutationFailed("Failed to add product", err)
			}
			return func() { s.rows = collection.Insert(s.rows, created) }, nil
		}, nil

	case form.Editing:
		input, err := s.draftInput()
		if err != nil {
			return nil, err
		}
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			updated, err := s.client.UpdateProduct(ctx, target, input)
			if err != nil {
				return nil, mutationFailed("Failed to update product", err)
			}
			return func() { s.rows = collection.Replace(s.rows, updated) }, nil
		}, nil

	case form.ConfirmingDelete:
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			if err := s.client.DeleteProduct(ctx, target); err != nil {
				return nil, mutationFailed(fmt.Sprintf("Failed to delete product %d", target), err)
			}
			return func() { s.rows = collection.Remove(s.rows, target) }, nil
		}, nil
	}
	return nil, nil
}

// Submit stages, commits and resolves in one call, for callers without an
// event loop.
func (s *Products) Submit(ctx context.Context) error {
	commit, err := s.StageSubmit()
	if err != nil || commit == nil {
		return err
	}
	apply, err := commit(ctx)
	return Resolve(&s.Form, apply, err)
}

func (s *Products) draftInput() (api.ProductInput, error) {
	price, err := form.Money("price", s.Form.Field("price"))
	if err != nil {
		return api.ProductInput{}, err
	}
	return api.ProductInput{
		Name:     s.Form.Field("name"),
		Category: s.Form.Field("category"),
		Price:    price,
	}, nil
}

// Analytics fetches every order line for the product and aggregates
// quantity, revenue and average unit price. ErrNoAnalytics when the
// product has never been ordered.
func (s *Products) Analytics(ctx context.Context, p models.Product) (ProductAnalytics, error) {
	lines, err := s.client.ProductOrderDetails(ctx, p.ID)
	if err != nil {
		return ProductAnalytics{}, fetchFailed(err)
	}
	if len(lines) == 0 {
		return ProductAnalytics{}, ErrNoAnalytics
	}

	a := ProductAnalytics{ProductName: p.Name, Lines: lines}
	revenue := decimal.Zero
	for _, line := range lines {
		a.TotalQuantity += line.Quantity
		unit := decimal.NewFromFloat(line.PricePerUnit)
		revenue = revenue.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	a.TotalRevenue = revenue
	if a.TotalQuantity > 0 {
		a.AveragePrice = revenue.DivRound(decimal.NewFromInt(int64(a.TotalQuantity)), 2)
	}
	return a, nil
}
