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

// Inventory is the stock management screen. Rows are view models: each
// inventory record joined with its product's name, category and price.
type Inventory struct {
	client *api.Client
	policy models.StatusPolicy

	Form form.Controller
	rows []models.InventoryView

	// products feeds the product picker in the add dialog, and lets a
	// freshly created row resolve its product without a refetch.
	products []models.Product
}

// NewInventory builds the inventory screen controller with the default
// stock status policy.
func NewInventory(client *api.Client) *Inventory {
	return &Inventory{client: client, policy: models.DefaultStatusPolicy}
}

// Rows returns the joined inventory rows currently displayed.
func (s *Inventory) Rows() []models.InventoryView { return s.rows }

// Products returns the product list backing the add dialog's picker.
func (s *Inventory) Products() []models.Product { return s.products }

// Status classifies a row under the screen's policy.
func (s *Inventory) Status(item models.Inventory) models.StockStatus {
	return s.policy.Classify(item.Stock, item.ReorderLevel)
}

// InventorySnapshot is one fetch's worth of screen state: the joined rows
// plus the product list backing the add dialog's picker.
type InventorySnapshot struct {
	Rows     []models.InventoryView
	Products []models.Product
}

// Fetch retrieves inventory and products and joins each record with its
// product, without touching the screen's state. A record whose product
// lookup fails keeps its row, unresolved.
func (s *Inventory) Fetch(ctx context.Context) (InventorySnapshot, error) {
	items, err := s.client.ListInventory(ctx)
	if err != nil {
		return InventorySnapshot{}, fetchFailed(err)
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return InventorySnapshot{}, fetchFailed(err)
	}

	views, joinErr := join.Collection(ctx, items,
		func(ctx context.Context, item models.Inventory) (models.InventoryView, error) {
			product, err := s.client.GetProduct(ctx, item.ProductID)
			if err != nil {
				return models.InventoryView{}, err
			}
			return models.InventoryView{
				Inventory:   item,
				ProductName: product.Name,
				Category:    product.Category,
				Price:       product.Price,
				Resolved:    true,
			}, nil
		},
		func(item models.Inventory) models.InventoryView {
			return models.InventoryView{Inventory: item}
		})
	if joinErr != nil {
		log.Printf("inventory join: some product lookups failed: %v", joinErr)
	}
	return InventorySnapshot{Rows: views, Products: products}, nil
}

// Apply installs a fetched snapshot.
func (s *Inventory) Apply(snap InventorySnapshot) {
	s.rows = snap.Rows
	s.products = snap.Products
}

// Load is Fetch and Apply in one step, for callers without an event loop.
func (s *Inventory) Load(ctx context.Context) error {
	snap, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(snap)
	return nil
}

// OpenAdd opens the add dialog with an empty draft.
func (s *Inventory) OpenAdd() {
	s.Form.OpenAdd(form.Draft{"productId": "", "stock": "", "reorderLevel": ""})
}

// OpenEdit opens the edit dialog. Product fields ride along read-only;
// only stock and reorder level are editable.
func (s *Inventory) OpenEdit(row models.InventoryView) {
	s.Form.OpenEdit(row.ID, form.Draft{
		"stock":        fmt.Sprintf("%d", row.Stock),
		"reorderLevel": fmt.Sprintf("%d", row.ReorderLevel),
	})
}

// OpenDelete opens the delete confirmation for the row.
func (s *Inventory) OpenDelete(row models.InventoryView) {
	s.Form.OpenDelete(row.ID)
}

// StageSubmit coerces the open dialog's draft and moves the form to
// Submitting. Stock and reorder level must parse as whole numbers before
// anything is staged. The returned commit performs only the API call;
// hand its outcome to Resolve on the goroutine that owns the screen.
func (s *Inventory) StageSubmit() (Commit, error) {
	switch s.Form.Mode() {
	case form.Adding:
		productID, err := form.ID("productId", s.Form.Field("productId"))
		if err != nil {
			return nil, err
		}
		stock, err := form.Count("stock", s.Form.Field("stock"))
		if err != nil {
			return nil, err
		}
		reorder, err := form.Count("reorderLevel", s.Form.Field("reorderLevel"))
		if err != nil {
			return nil, err
		}
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			created, err := s.client.CreateInventory(ctx, api.InventoryInput{
				ProductID:    productID,
				Stock:        stock,
				ReorderLevel: reorder,
			})
			if err != nil {
				return nil, mutationFailed("Failed to add inventory", err)
			}
			return func() { s.rows = collection.Insert(s.rows, s.viewFor(created)) }, nil
		}, nil

	case form.Editing:
		stock, err := form.Count("stock", s.Form.Field("stock"))
		if err != nil {
			return nil, err
		}
		reorder, err := form.Count("reorderLevel", s.Form.Field("reorderLevel"))
		if err != nil {
			return nil, err
		}
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			updated, err := s.client.UpdateInventory(ctx, target, api.InventoryUpdateInput{
				Stock:        stock,
				ReorderLevel: reorder,
			})
			if err != nil {
				return nil, mutationFailed("Failed to update inventory", err)
			}
			return func() { s.rows = collection.Replace(s.rows, s.mergeUpdate(updated)) }, nil
		}, nil

	case form.ConfirmingDelete:
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			if err := s.client.DeleteInventory(ctx, target); err != nil {
				return nil, mutationFailed(fmt.Sprintf("Failed to delete inventory %d", target), err)
			}
			return func() { s.rows = collection.Remove(s.rows, target) }, nil
		}, nil
	}
	return nil, nil
}

// Submit stages, commits and resolves in one call, for callers without an
// event loop.
func (s *Inventory) Submit(ctx context.Context) error {
	commit, err := s.StageSubmit()
	if err != nil || commit == nil {
		return err
	}
	apply, err := commit(ctx)
	return Resolve(&s.Form, apply, err)
}

// viewFor builds the view for a server-returned record using the cached
// product list, so a freshly added row shows its product immediately.
func (s *Inventory) viewFor(item models.Inventory) models.InventoryView {
	for _, p := range s.products {
		if p.ID == item.ProductID {
			return models.InventoryView{
				Inventory:   item,
				ProductName: p.Name,
				Category:    p.Category,
				Price:       p.Price,
				Resolved:    true,
			}
		}
	}
	return models.InventoryView{Inventory: item}
}

// mergeUpdate keeps the existing row's resolved product fields and takes
// the numbers from the server's updated record.
func (s *Inventory) mergeUpdate(updated models.Inventory) models.InventoryView {
	for _, row := range s.rows {
		if row.ID == updated.ID {
			row.Inventory = updated
			return row
		}
	}
	return s.viewFor(updated)
}
