package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

func TestStockStatusClassification(t *testing.T) {
	tests := []struct {
		name         string
		stock        int
		reorderLevel int
		want         models.StockStatus
	}{
		{"empty shelf", 0, 50, models.OutOfStock},
		{"below reorder level", 15, 50, models.LowStock},
		{"comfortably stocked", 60, 50, models.InStock},
		{"exactly at reorder level", 50, 50, models.InStock},
		{"zero stock zero reorder", 0, 0, models.OutOfStock},
		{"one above zero reorder", 1, 0, models.InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.Inventory{Stock: tt.stock, ReorderLevel: tt.reorderLevel}
			assert.Equal(t, tt.want, item.Status())
		})
	}
}

func TestStatusPolicyBoundaryIsConfigurable(t *testing.T) {
	strict := models.StatusPolicy{LowAtReorderLevel: true}
	assert.Equal(t, models.LowStock, strict.Classify(50, 50))
	assert.Equal(t, models.InStock, models.DefaultStatusPolicy.Classify(50, 50))
}
