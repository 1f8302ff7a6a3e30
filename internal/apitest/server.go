// Package apitest is an in-memory stand-in for the pharmacy backend, with
// the same routes, response shapes and status codes, so client and screen
// tests run against real HTTP instead of stubbed interfaces.
package apitest

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// Server holds the fake backend's state. Seed the maps directly (or via
// the Seed helpers), then mount Router on httptest.
type Server struct {
	mu     sync.Mutex
	nextID uint

	Customers map[uint]models.Customer
	Products  map[uint]models.Product
	Inventory map[uint]models.Inventory
	Orders    map[uint]models.Order

	// Requests counts every request served; tests assert on it to prove
	// that a rejected draft never reached the network.
	Requests atomic.Int64
}

// NewServer returns an empty fake backend.
func NewServer() *Server {
	return &Server{
		nextID:    1000,
		Customers: make(map[uint]models.Customer),
		Products:  make(map[uint]models.Product),
		Inventory: make(map[uint]models.Inventory),
		Orders:    make(map[uint]models.Order),
	}
}

// NextID hands out server-side identifiers, like the real DB would.
func (s *Server) NextID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// SeedProduct inserts a product and returns it with its assigned ID.
func (s *Server) SeedProduct(p models.Product) models.Product {
	if p.ID == 0 {
		p.ID = s.NextID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products[p.ID] = p
	return p
}

// SeedCustomer inserts a customer and returns it with its assigned ID.
func (s *Server) SeedCustomer(c models.Customer) models.Customer {
	if c.ID == 0 {
		c.ID = s.NextID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Customers[c.ID] = c
	return c
}

// SeedInventory inserts an inventory record and returns it with its ID.
func (s *Server) SeedInventory(i models.Inventory) models.Inventory {
	if i.ID == 0 {
		i.ID = s.NextID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Inventory[i.ID] = i
	return i
}

// SeedOrder inserts an order (detail lines inline) and returns it with IDs.
func (s *Server) SeedOrder(o models.Order) models.Order {
	if o.ID == 0 {
		o.ID = s.NextID()
	}
	for i := range o.Details {
		if o.Details[i].ID == 0 {
			o.Details[i].ID = s.NextID()
		}
		o.Details[i].OrderID = o.ID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders[o.ID] = o
	return o
}

// Router wires the same route table as the real backend.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		s.Requests.Add(1)
		c.Next()
	})

	// Product routes
	r.GET("/products", s.getProducts)
	r.POST("/products", s.createProduct)
	r.GET("/products/total", s.getTotalProducts)
	r.GET("/products/:id", s.getProduct)
	r.PUT("/products/:id", s.updateProduct)
	r.DELETE("/products/:id", s.deleteProduct)

	// Inventory routes
	r.GET("/inventory", s.getInventory)
	r.POST("/inventory", s.createInventory)
	r.GET("/inventory/low-stock", s.getLowStock)
	r.PUT("/inventory/:id", s.updateInventory)
	r.DELETE("/inventory/:id", s.deleteInventory)

	// Customer routes
	r.GET("/customers", s.getCustomers)
	r.POST("/customers", s.createCustomer)
	r.GET("/customers/total", s.getTotalCustomers)
	r.PUT("/customers/:id", s.updateCustomer)
	r.DELETE("/customers/:id", s.deleteCustomer)
	r.GET("/customers/:id/orders", s.getCustomerOrders)

	// Order routes
	r.GET("/orders", s.getOrders)
	r.GET("/orders/recent", s.getRecentOrders)
	r.GET("/orders/total-sales", s.getTotalSales)
	r.GET("/orders/today", s.getTodayTransactions)
	r.DELETE("/orders/:id", s.deleteOrder)

	// OrderDetail routes
	r.GET("/orderdetails/product/:id", s.getProductOrderDetails)

	return r
}

func (s *Server) sortedProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) getProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.sortedProducts())
}

func (s *Server) getProduct(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	product, ok := s.Products[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) createProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = s.NextID()
	s.mu.Lock()
	s.Products[product.ID] = product
	s.mu.Unlock()
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	product, ok := s.Products[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	// Bind over the stored record, like the real backend's db.First + bind.
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = id
	s.mu.Lock()
	s.Products[id] = product
	s.mu.Unlock()
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	_, ok := s.Products[id]
	delete(s.Products, id)
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (s *Server) getTotalProducts(c *gin.Context) {
	s.mu.Lock()
	total := int64(len(s.Products))
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"total_products": total})
}

func (s *Server) getInventory(c *gin.Context) {
	s.mu.Lock()
	out := make([]models.Inventory, 0, len(s.Inventory))
	for _, item := range s.Inventory {
		out = append(out, item)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createInventory(c *gin.Context) {
	var item models.Inventory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = s.NextID()
	s.mu.Lock()
	s.Inventory[item.ID] = item
	s.mu.Unlock()
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateInventory(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	item, ok := s.Inventory[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory not found"})
		return
	}
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id
	s.mu.Lock()
	s.Inventory[id] = item
	s.mu.Unlock()
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteInventory(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	_, ok := s.Inventory[id]
	delete(s.Inventory, id)
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

func (s *Server) getLowStock(c *gin.Context) {
	s.mu.Lock()
	out := make([]models.Inventory, 0)
	for _, item := range s.Inventory {
		if item.Stock < item.ReorderLevel {
			out = append(out, item)
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) getCustomers(c *gin.Context) {
	s.mu.Lock()
	out := make([]models.Customer, 0, len(s.Customers))
	for _, customer := range s.Customers {
		out = append(out, customer)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer.ID = s.NextID()
	s.mu.Lock()
	s.Customers[customer.ID] = customer
	s.mu.Unlock()
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	customer, ok := s.Customers[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer.ID = id
	s.mu.Lock()
	s.Customers[id] = customer
	s.mu.Unlock()
	c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	_, ok := s.Customers[id]
	delete(s.Customers, id)
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

func (s *Server) getTotalCustomers(c *gin.Context) {
	s.mu.Lock()
	total := int64(len(s.Customers))
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"total_customers": total})
}

func (s *Server) getCustomerOrders(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	out := make([]models.Order, 0)
	for _, order := range s.Orders {
		if order.CustomerID == id {
			out = append(out, order)
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

// getOrders preloads the customer on each order, like the real backend.
func (s *Server) getOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.ordersWithCustomers())
}

func (s *Server) ordersWithCustomers() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		order.Customer = s.Customers[order.CustomerID]
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) getRecentOrders(c *gin.Context) {
	orders := s.ordersWithCustomers()
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	if len(orders) > 10 {
		orders = orders[:10]
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getTotalSales(c *gin.Context) {
	s.mu.Lock()
	var total float64
	for _, order := range s.Orders {
		total += order.TotalAmount
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"total_sales": total})
}

func (s *Server) getTodayTransactions(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	s.mu.Lock()
	var count int64
	for _, order := range s.Orders {
		if order.OrderDate.Format("2006-01-02") == today {
			count++
		}
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"today_transactions": count})
}

func (s *Server) deleteOrder(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	_, ok := s.Orders[id]
	delete(s.Orders, id)
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order and related details deleted"})
}

func (s *Server) getProductOrderDetails(c *gin.Context) {
	id := param(c)
	s.mu.Lock()
	out := make([]models.OrderDetail, 0)
	for _, order := range s.Orders {
		for _, detail := range order.Details {
			if detail.ProductID == id {
				out = append(out, detail)
			}
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func param(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
