package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// ProductInput is the body for product create/update calls (PascalCase keys,
// matching what the original dashboard sent).
type ProductInput struct {
	Name     string  `json:"Name" validate:"required"`
	Category string  `json:"Category" validate:"required"`
	Price    float64 `json:"Price" validate:"gte=0"`
}

// ListProducts fetches all products.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "products", "list", "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by ID. This is the secondary lookup behind
// the inventory and order joins.
func (c *Client) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := c.getJSON(ctx, "products", "get", fmt.Sprintf("/products/%d", id), &product)
	return product, err
}

// CreateProduct creates a product and returns the server's record.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (models.Product, error) {
	var created models.Product
	if err := c.checkInput("products", "create", input); err != nil {
		return created, err
	}
	err := c.sendJSON(ctx, "products", "create", http.MethodPost, "/products", input, &created)
	return created, err
}

// UpdateProduct updates a product and returns the server's record.
func (c *Client) UpdateProduct(ctx context.Context, id uint, input ProductInput) (models.Product, error) {
	var updated models.Product
	if err := c.checkInput("products", "update", input); err != nil {
		return updated, err
	}
	err := c.sendJSON(ctx, "products", "update", http.MethodPut, fmt.Sprintf("/products/%d", id), input, &updated)
	return updated, err
}

// DeleteProduct deletes a product by ID.
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, "products", "delete", fmt.Sprintf("/products/%d", id))
}
