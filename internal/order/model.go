package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusRefunded  Status = "REFUNDED"
	// StatusCancelled is reserved; no flow transitions into it yet.
	StatusCancelled Status = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentLinePay    PaymentMethod = "LINE_PAY"
	PaymentOther      PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentLinePay, PaymentOther:
		return true
	}
	return false
}

// Order amounts are frozen at creation; a refund flips Status and nothing
// else. Invariant: Total == Subtotal - DiscountAmount + TaxAmount.
type Order struct {
	ID             string        `json:"id"`
	OrderNumber    string        `json:"orderNumber"`
	Status         Status        `json:"status"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discountAmount"`
	TaxAmount      float64       `json:"taxAmount"`
	Total          float64       `json:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Note           *string       `json:"note,omitempty"`
	CashierID      string        `json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"-"`
	Cashier        *Cashier      `json:"cashier,omitempty"`
	Items          []*OrderItem  `json:"items"`
}

type Cashier struct {
	Name string `json:"name"`
}

// OrderItem snapshots the product price at sale time; it never follows later
// catalog price changes.
type OrderItem struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"-"`
	ProductID string       `json:"productId"`
	Quantity  int          `json:"quantity"`
	UnitPrice float64      `json:"unitPrice"`
	Subtotal  float64      `json:"subtotal"`
	Product   *ItemProduct `json:"product,omitempty"`
}

type ItemProduct struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutProduct is the snapshot the engine prices and stock-checks against.
// The read can be stale by write time; the ledger's conditional update is the
// backstop.
type CheckoutProduct struct {
	ID    string
	Name  string
	Price float64
	Stock int
}

type ListFilter struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}
