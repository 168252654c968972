package order

import (
	"context"
	"fmt"

	"github.com/Sean861026/pos-system/internal/inventory"
	"github.com/Sean861026/pos-system/internal/logger"
	"github.com/Sean861026/pos-system/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CheckoutInput struct {
	Items          []CartItem
	PaymentMethod  PaymentMethod
	DiscountAmount float64
	Note           *string
}

type Service interface {
	Checkout(ctx context.Context, cashierID string, input CheckoutInput) (*Order, error)
	Refund(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]*Order, int64, error)
	Get(ctx context.Context, orderID string) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// mergeCartItems folds repeated product ids into one line so the stock check
// sees the combined quantity. Order of first appearance is preserved.
func mergeCartItems(items []CartItem) []CartItem {
	index := make(map[string]int, len(items))
	merged := make([]CartItem, 0, len(items))

	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

func (s *service) Checkout(ctx context.Context, cashierID string, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("cashier_id", cashierID),
		zap.Int("item_count", len(input.Items)),
	)

	log.Info("checkout started")

	// 1. Validate input
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if input.PaymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}
	if !input.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, input.PaymentMethod)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if input.DiscountAmount < 0 {
		return nil, ErrInvalidDiscount
	}

	items := mergeCartItems(input.Items)

	// 2. Load products with their stock snapshot in one read
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.repo.GetProductsForCheckout(ctx, ids)
	if err != nil {
		log.Error("failed to load products for checkout", zap.Error(err))
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, ErrProductUnavailable
	}

	// 3. Snapshot stock check; the ledger's conditional update inside the
	// transaction is the authoritative guard under concurrency.
	for _, item := range items {
		p := products[item.ProductID]
		if p.Stock < item.Quantity {
			log.Warn("insufficient stock at snapshot check",
				zap.String("product_id", item.ProductID),
				zap.Int("requested", item.Quantity),
				zap.Int("available", p.Stock),
			)
			return nil, fmt.Errorf("%w: %s", inventory.ErrInsufficientStock, p.Name)
		}
	}

	// 4. Price lines from the catalog, never from the client
	orderItems := make([]*OrderItem, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		p := products[item.ProductID]
		lineSubtotal := p.Price * float64(item.Quantity)
		subtotal += lineSubtotal

		orderItems = append(orderItems, &OrderItem{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: p.Price,
			Subtotal:  lineSubtotal,
		})
	}

	if input.DiscountAmount > subtotal {
		return nil, ErrInvalidDiscount
	}

	o := &Order{
		ID:             uuid.NewString(),
		OrderNumber:    utils.GenerateOrderNumber(),
		Status:         StatusCompleted,
		Subtotal:       subtotal,
		DiscountAmount: input.DiscountAmount,
		TaxAmount:      0,
		Total:          subtotal - input.DiscountAmount,
		PaymentMethod:  input.PaymentMethod,
		Note:           input.Note,
		CashierID:      cashierID,
		Items:          orderItems,
	}

	log = log.With(
		zap.String("order_number", o.OrderNumber),
		zap.Float64("subtotal", o.Subtotal),
		zap.Float64("total", o.Total),
	)

	// 5. Transaction boundary: order, items and stock decrements commit
	// together or not at all.
	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Warn("checkout transaction failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout completed")
	return s.repo.GetOrderDetail(ctx, o.ID)
}

func (s *service) Refund(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Refund"),
		zap.String("order_id", orderID),
	)

	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusCompleted {
		log.Warn("refund rejected", zap.String("status", string(o.Status)))
		return nil, fmt.Errorf("%w: current status is %s", ErrOrderNotRefundable, o.Status)
	}

	if err := s.repo.RefundOrderTx(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order refunded", zap.String("order_number", o.OrderNumber))
	return s.repo.GetOrderDetail(ctx, orderID)
}

func (s *service) List(ctx context.Context, filter ListFilter, page, limit int) ([]*Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	orders, err := s.repo.FetchOrders(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}
