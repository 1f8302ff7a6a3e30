package models

// StockStatus is derived from stock and reorder level at display time.
// It is never persisted and never sent back to the server.
type StockStatus string

const (
	OutOfStock StockStatus = "Out of Stock"
	LowStock   StockStatus = "Low Stock"
	InStock    StockStatus = "In Stock"
)

// StatusPolicy decides how the stock == reorderLevel boundary is classified.
// The original screens disagreed with themselves here; the rendered table and
// the server's low-stock query (stock < reorder_level) both treat equality as
// in stock, so that is the default.
type StatusPolicy struct {
	// LowAtReorderLevel treats stock == reorderLevel as Low Stock.
	LowAtReorderLevel bool
}

// DefaultStatusPolicy matches the server's low-stock query.
var DefaultStatusPolicy = StatusPolicy{LowAtReorderLevel: false}

// Classify computes the stock status for a stock/reorderLevel pair.
func (p StatusPolicy) Classify(stock, reorderLevel int) StockStatus {
	switch {
	case stock == 0:
		return OutOfStock
	case stock < reorderLevel:
		return LowStock
	case stock == reorderLevel && p.LowAtReorderLevel:
		return LowStock
	default:
		return InStock
	}
}

// Inventory mirrors the pharmacy API's inventory resource.
type Inventory struct {
	ID           uint `json:"ID"`
	ProductID    uint `json:"ProductID"`
	Stock        int  `json:"Stock"`
	ReorderLevel int  `json:"ReorderLevel"`
}

// Key returns the primary identifier used by collection reducers.
func (i Inventory) Key() uint { return i.ID }

// Status classifies the record under the default policy.
func (i Inventory) Status() StockStatus {
	return DefaultStatusPolicy.Classify(i.Stock, i.ReorderLevel)
}

// InventoryView is the inventory row as the screens display it: the raw
// record annotated with fields looked up from the referenced product.
// Display-only; rebuilt on every fetch.
type InventoryView struct {
	Inventory

	ProductName string
	Category    string
	Price       float64

	// Resolved reports whether the product lookup succeeded. Unresolved
	// rows are still shown, with placeholder product fields.
	Resolved bool
}
