package models

import "time"

// Order statuses as the server stores them.
const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

// Order mirrors the pharmacy API's order resource. List endpoints preload
// the customer and detail lines, so both arrive nested in the same payload.
type Order struct {
	ID          uint          `json:"ID"`
	CustomerID  uint          `json:"CustomerID"`
	Customer    Customer      `json:"Customer"`
	OrderDate   time.Time     `json:"OrderDate"`
	TotalAmount float64       `json:"TotalAmount"`
	OrderStatus string        `json:"OrderStatus"`
	Details     []OrderDetail `json:"Details"`
}

// Key returns the primary identifier used by collection reducers.
func (o Order) Key() uint { return o.ID }

// OrderDetail is one line of an order.
type OrderDetail struct {
	ID           uint    `json:"ID"`
	OrderID      uint    `json:"OrderID"`
	ProductID    uint    `json:"ProductID"`
	Quantity     int     `json:"Quantity"`
	PricePerUnit float64 `json:"PricePerUnit"`
}

// Key returns the primary identifier used by collection reducers.
func (d OrderDetail) Key() uint { return d.ID }

// OrderDetailView is a detail line annotated with the product's name.
type OrderDetailView struct {
	OrderDetail

	ProductName string
	Resolved    bool
}

// OrderView is an order whose detail lines carry resolved product names.
type OrderView struct {
	Order

	Details []OrderDetailView
}
