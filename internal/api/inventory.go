package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// InventoryInput is the body for inventory create calls. Unlike customers
// and products, the original dashboard sent camelCase keys here; keep them.
type InventoryInput struct {
	ProductID    uint `json:"productID" validate:"required"`
	Stock        int  `json:"stock" validate:"gte=0"`
	ReorderLevel int  `json:"reorderLevel" validate:"gte=0"`
}

// InventoryUpdateInput is the body for inventory update calls (camelCase,
// no product reference: the product of an inventory row never changes).
type InventoryUpdateInput struct {
	Stock        int `json:"stock" validate:"gte=0"`
	ReorderLevel int `json:"reorderLevel" validate:"gte=0"`
}

// ListInventory fetches all inventory records.
func (c *Client) ListInventory(ctx context.Context) ([]models.Inventory, error) {
	var items []models.Inventory
	if err := c.getJSON(ctx, "inventory", "list", "/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateInventory creates an inventory record and returns the server's record.
func (c *Client) CreateInventory(ctx context.Context, input InventoryInput) (models.Inventory, error) {
	var created models.Inventory
	if err := c.checkInput("inventory", "create", input); err != nil {
		return created, err
	}
	err := c.sendJSON(ctx, "inventory", "create", http.MethodPost, "/inventory", input, &created)
	return created, err
}

// UpdateInventory updates stock and reorder level, returning the server's record.
func (c *Client) UpdateInventory(ctx context.Context, id uint, input InventoryUpdateInput) (models.Inventory, error) {
	var updated models.Inventory
	if err := c.checkInput("inventory", "update", input); err != nil {
		return updated, err
	}
	err := c.sendJSON(ctx, "inventory", "update", http.MethodPut, fmt.Sprintf("/inventory/%d", id), input, &updated)
	return updated, err
}

// DeleteInventory deletes an inventory record by ID.
func (c *Client) DeleteInventory(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, "inventory", "delete", fmt.Sprintf("/inventory/%d", id))
}

// LowStockInventory fetches records the server considers below reorder level.
func (c *Client) LowStockInventory(ctx context.Context) ([]models.Inventory, error) {
	var items []models.Inventory
	err := c.getJSON(ctx, "inventory", "low-stock", "/inventory/low-stock", &items)
	return items, err
}
