package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// CustomerInput is the body for customer create/update calls. The server
// binds these case-insensitively, but the original dashboard sent PascalCase
// keys for customers, so the tags preserve that.
type CustomerInput struct {
	Name  string `json:"Name" validate:"required"`
	Email string `json:"Email" validate:"required,email"`
	Phone string `json:"Phone" validate:"required"`
}

// ListCustomers fetches all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.getJSON(ctx, "customers", "list", "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer creates a customer and returns the server's record.
func (c *Client) CreateCustomer(ctx context.Context, input CustomerInput) (models.Customer, error) {
	var created models.Customer
	if err := c.checkInput("customers", "create", input); err != nil {
		return created, err
	}
	err := c.sendJSON(ctx, "customers", "create", http.MethodPost, "/customers", input, &created)
	return created, err
}

// UpdateCustomer updates a customer and returns the server's record.
func (c *Client) UpdateCustomer(ctx context.Context, id uint, input CustomerInput) (models.Customer, error) {
	var updated models.Customer
	if err := c.checkInput("customers", "update", input); err != nil {
		return updated, err
	}
	err := c.sendJSON(ctx, "customers", "update", http.MethodPut, fmt.Sprintf("/customers/%d", id), input, &updated)
	return updated, err
}

// DeleteCustomer deletes a customer by ID.
func (c *Client) DeleteCustomer(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, "customers", "delete", fmt.Sprintf("/customers/%d", id))
}

// CustomerOrders fetches the orders placed by one customer.
func (c *Client) CustomerOrders(ctx context.Context, id uint) ([]models.Order, error) {
	var orders []models.Order
	err := c.getJSON(ctx, "customers", "orders", fmt.Sprintf("/customers/%d/orders", id), &orders)
	return orders, err
}
