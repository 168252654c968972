package product

import (
	"time"

	"github.com/Sean861026/pos-system/internal/category"
)

type Product struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	Barcode     *string            `json:"barcode,omitempty"`
	Description *string            `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Cost        float64            `json:"cost"`
	ImageURL    *string            `json:"imageUrl,omitempty"`
	CategoryID  string             `json:"categoryId"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"-"`
	Category    *category.Category `json:"category,omitempty"`
	Inventory   *StockInfo         `json:"inventory,omitempty"`
}

// StockInfo is the inventory summary carried on catalog reads; the inventory
// package stays the only writer of these numbers.
type StockInfo struct {
	Quantity    int `json:"quantity"`
	MinQuantity int `json:"minQuantity"`
}
