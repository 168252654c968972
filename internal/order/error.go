package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart             = errors.New("cart is empty")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidQuantity       = errors.New("item quantity must be greater than zero")
	ErrInvalidDiscount       = errors.New("discount must be between zero and the order subtotal")
	ErrProductUnavailable    = errors.New("some products do not exist or are inactive")

	// -- Resource State --
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotRefundable = errors.New("order cannot be refunded")
)
