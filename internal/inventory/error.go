package inventory

import "errors"

var (
	ErrInventoryNotFound = errors.New("inventory record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrZeroAdjustment    = errors.New("adjustment quantity must not be zero")
)
