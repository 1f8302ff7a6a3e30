package screens

import (
	"context"
	"errors"
	"log"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/join"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// HomeStats are the four KPI tiles at the top of the homepage.
type HomeStats struct {
	TotalSales        float64
	TotalCustomers    int64
	TotalProducts     int64
	TodayTransactions int64
}

// Home is the dashboard homepage: KPI tiles, recent orders and the
// low-stock list joined with product names.
type Home struct {
	client *api.Client

	Stats        HomeStats
	RecentOrders []models.Order
	LowStock     []models.InventoryView
}

// NewHome builds the homepage controller.
func NewHome(client *api.Client) *Home {
	return &Home{client: client}
}

// HomeSnapshot is one refresh's worth of homepage state.
type HomeSnapshot struct {
	Stats        HomeStats
	RecentOrders []models.Order
	LowStock     []models.InventoryView
}

// Snapshot captures the currently displayed state as the base for a
// refresh. Call it on the goroutine that owns the screen.
func (s *Home) Snapshot() HomeSnapshot {
	return HomeSnapshot{Stats: s.Stats, RecentOrders: s.RecentOrders, LowStock: s.LowStock}
}

// Fetch refreshes every widget into a copy of base, without touching the
// screen's state. A failed widget keeps its base value and is logged; the
// causes come back joined inside a FetchError alongside the partially
// refreshed snapshot, which is still worth applying.
func (s *Home) Fetch(ctx context.Context, base HomeSnapshot) (HomeSnapshot, error) {
	snap := base
	var errs []error
	fail := func(err error) {
		log.Printf("homepage fetch failed: %v", err)
		errs = append(errs, err)
	}

	if sales, err := s.client.TotalSales(ctx); err != nil {
		fail(err)
	} else {
		snap.Stats.TotalSales = sales
	}
	if customers, err := s.client.TotalCustomers(ctx); err != nil {
		fail(err)
	} else {
		snap.Stats.TotalCustomers = customers
	}
	if products, err := s.client.TotalProducts(ctx); err != nil {
		fail(err)
	} else {
		snap.Stats.TotalProducts = products
	}
	if today, err := s.client.TodayTransactions(ctx); err != nil {
		fail(err)
	} else {
		snap.Stats.TodayTransactions = today
	}

	if recent, err := s.client.RecentOrders(ctx); err != nil {
		fail(err)
	} else {
		snap.RecentOrders = recent
	}

	if low, err := s.fetchLowStock(ctx); err != nil {
		fail(err)
	} else {
		snap.LowStock = low
	}

	if len(errs) > 0 {
		return snap, &FetchError{Err: errors.Join(errs...)}
	}
	return snap, nil
}

// Apply installs a refreshed snapshot.
func (s *Home) Apply(snap HomeSnapshot) {
	s.Stats = snap.Stats
	s.RecentOrders = snap.RecentOrders
	s.LowStock = snap.LowStock
}

// Load is Snapshot, Fetch and Apply in one step, for callers without an
// event loop. The snapshot is applied even on partial failure, so the
// widgets that did refresh show fresh data.
func (s *Home) Load(ctx context.Context) error {
	snap, err := s.Fetch(ctx, s.Snapshot())
	s.Apply(snap)
	return err
}

func (s *Home) fetchLowStock(ctx context.Context) ([]models.InventoryView, error) {
	items, err := s.client.LowStockInventory(ctx)
	if err != nil {
		return nil, err
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
		log.Printf("low-stock join: some product lookups failed: %v", joinErr)
	}
	return views, nil
}
