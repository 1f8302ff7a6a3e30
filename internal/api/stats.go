package api

import "context"

//
// --- Homepage aggregate endpoints ---
//
// These return small gin.H-style objects rather than entities, so each one
// gets its own response type with the server's snake_case key.

type totalSalesResponse struct {
	TotalSales float64 `json:"total_sales"`
}

type totalProductsResponse struct {
	TotalProducts int64 `json:"total_products"`
}

type totalCustomersResponse struct {
	TotalCustomers int64 `json:"total_customers"`
}

type todayTransactionsResponse struct {
	TodayTransactions int64 `json:"today_transactions"`
}

// TotalSales returns the all-time sales sum.
func (c *Client) TotalSales(ctx context.Context) (float64, error) {
	var out totalSalesResponse
	err := c.getJSON(ctx, "orders", "total-sales", "/orders/total-sales", &out)
	return out.TotalSales, err
}

// TotalProducts returns the product count.
func (c *Client) TotalProducts(ctx context.Context) (int64, error) {
	var out totalProductsResponse
	err := c.getJSON(ctx, "products", "total", "/products/total", &out)
	return out.TotalProducts, err
}

// TotalCustomers returns the customer count.
func (c *Client) TotalCustomers(ctx context.Context) (int64, error) {
	var out totalCustomersResponse
	err := c.getJSON(ctx, "customers", "total", "/customers/total", &out)
	return out.TotalCustomers, err
}

// TodayTransactions returns the number of orders placed today.
func (c *Client) TodayTransactions(ctx context.Context) (int64, error) {
	var out todayTransactionsResponse
	err := c.getJSON(ctx, "orders", "today", "/orders/today", &out)
	return out.TodayTransactions, err
}
