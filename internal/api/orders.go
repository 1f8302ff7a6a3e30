package api

import (
	"context"
	"fmt"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// ListOrders fetches all orders with their customer and detail lines preloaded.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "orders", "list", "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// RecentOrders fetches the ten most recent orders.
func (c *Client) RecentOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := c.getJSON(ctx, "orders", "recent", "/orders/recent", &orders)
	return orders, err
}

// DeleteOrder deletes an order (the server cascades its detail lines).
func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, "orders", "delete", fmt.Sprintf("/orders/%d", id))
}

// ProductOrderDetails fetches every order line referencing one product.
// Feeds the product analytics modal.
func (c *Client) ProductOrderDetails(ctx context.Context, productID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := c.getJSON(ctx, "orderdetails", "by-product", fmt.Sprintf("/orderdetails/product/%d", productID), &details)
	return details, err
}
