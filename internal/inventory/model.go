package inventory

import "time"

type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAdjustment MovementType = "ADJUSTMENT"
	MovementReturn     MovementType = "RETURN"
)

type Inventory struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"productId"`
	Quantity    int          `json:"quantity"`
	MinQuantity int          `json:"minQuantity"`
	IsLowStock  bool         `json:"isLowStock"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Product     *ProductInfo `json:"product,omitempty"`
}

// LowStock reports whether the quantity has reached the reorder threshold.
// Advisory only, never blocks a sale.
func (i *Inventory) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// ProductInfo is the catalog snapshot attached to inventory reads.
type ProductInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price"`
	CategoryName *string `json:"categoryName,omitempty"`
}

// Movement is one append-only ledger entry. Quantity carries the signed
// effect: IN and RETURN rows are positive, OUT rows negative, ADJUSTMENT as
// given. Current inventory quantity always equals the sum of its movements.
type Movement struct {
	ID        string       `json:"id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Note      *string      `json:"note,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
