package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns a human-readable order number of the form
// ORD-YYYYMMDD-NNNNNN. The suffix is cryptographically random rather than
// clock-derived; the unique index on order_number catches the residual
// collision odds and fails the enclosing checkout transaction.
func GenerateOrderNumber() string {
	now := time.Now().UTC()
	datePart := now.Format("20060102")

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 1000000)
	}

	return fmt.Sprintf("ORD-%s-%06d", datePart, n.Int64())
}
