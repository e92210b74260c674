package domain

import (
	"errors"
	"time"
)

// StockStatus classifies how much of an inventory item remains.
type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

// LowStockThreshold is the quantity below which an item counts as low stock.
const LowStockThreshold = 10

var ErrInventoryItemNotFound = errors.New("inventory item not found")

// DeriveStockStatus maps a quantity to its stock status.
func DeriveStockStatus(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// InventoryItem tracks warehouse stock of a medication batch.
type InventoryItem struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Dosage     string      `json:"dosage"`
	Quantity   int         `json:"quantity"`
	Supplier   string      `json:"supplier"`
	ExpiryDate time.Time   `json:"expiry_date"`
	Status     StockStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
