package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found or inactive")
	ErrMissingFields   = errors.New("name, sku, price and category are required")
	ErrSKUExists       = errors.New("sku already in use")
)

// PgUniqueViolation is the Postgres error code for unique constraint failures.
const PgUniqueViolation = "23505"
