package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sean861026/pos-system/internal/inventory"
	"github.com/Sean861026/pos-system/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProductsForCheckout(ctx context.Context, productIDs []string) (map[string]*CheckoutProduct, error)
	CreateOrderTx(ctx context.Context, o *Order) error
	RefundOrderTx(ctx context.Context, o *Order) error
	GetOrderDetail(ctx context.Context, orderID string) (*Order, error)
	FetchOrders(ctx context.Context, filter ListFilter, limit, offset int) ([]*Order, error)
	CountOrders(ctx context.Context, filter ListFilter) (int64, error)
	FetchOrderItems(ctx context.Context, orderIDs []string) (map[string][]*OrderItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProductsForCheckout(ctx context.Context, productIDs []string) (map[string]*CheckoutProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.price, i.quantity
		FROM products p
		JOIN inventories i ON i.product_id = p.id
		WHERE p.id = ANY($1) AND p.is_active = TRUE
	`, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[string]*CheckoutProduct, len(productIDs))
	for rows.Next() {
		var p CheckoutProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products[p.ID] = &p
	}
	return products, rows.Err()
}

// CreateOrderTx persists the order, its items and one OUT movement per line
// as a single transaction. A conditional-update failure on any line (the
// ledger's non-negative backstop) aborts the whole unit, so a losing
// concurrent checkout leaves no order and no stock effect behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", len(o.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, status, subtotal, discount_amount,
			tax_amount, total, payment_method, note, cashier_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		o.ID, o.OrderNumber, o.Status, o.Subtotal, o.DiscountAmount,
		o.TaxAmount, o.Total, o.PaymentMethod, o.Note, o.CashierID,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, item.ID, o.ID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}

		err = inventory.ApplyMovement(
			ctx, tx, item.ProductID, -item.Quantity,
			inventory.MovementOut, "order "+o.OrderNumber,
		)
		if err != nil {
			log.Warn("stock decrement failed",
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed")
	return nil
}

// RefundOrderTx flips the order to REFUNDED and books one RETURN movement per
// original item in one transaction. The conditional status update serializes
// concurrent refunds: only one caller can observe COMPLETED and proceed.
func (r *repository) RefundOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "RefundOrderTx"),
		zap.String("order_number", o.OrderNumber),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, StatusRefunded, o.ID, StatusCompleted)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: current status is not %s", ErrOrderNotRefundable, StatusCompleted)
	}

	for _, item := range o.Items {
		err = inventory.ApplyMovement(
			ctx, tx, item.ProductID, item.Quantity,
			inventory.MovementReturn, "refund "+o.OrderNumber,
		)
		if err != nil {
			log.Error("stock restore failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	committed = true
	log.Info("refund transaction committed")
	return nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	var cashierName string
	err := r.db.QueryRowContext(ctx, `
		SELECT
			o.id, o.order_number, o.status, o.subtotal, o.discount_amount,
			o.tax_amount, o.total, o.payment_method, o.note, o.cashier_id,
			o.created_at, o.updated_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.cashier_id
		WHERE o.id = $1
	`, orderID).Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.Subtotal, &o.DiscountAmount,
		&o.TaxAmount, &o.Total, &o.PaymentMethod, &o.Note, &o.CashierID,
		&o.CreatedAt, &o.UpdatedAt, &cashierName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Cashier = &Cashier{Name: cashierName}

	itemsByOrder, err := r.FetchOrderItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]

	return &o, nil
}

func (r *repository) FetchOrders(ctx context.Context, filter ListFilter, limit, offset int) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "FetchOrders"),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	query := `
		SELECT
			o.id, o.order_number, o.status, o.subtotal, o.discount_amount,
			o.tax_amount, o.total, o.payment_method, o.note, o.cashier_id,
			o.created_at, o.updated_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.cashier_id
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if filter.Status != nil && *filter.Status != "" {
		query += fmt.Sprintf(" AND o.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND o.created_at >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND o.created_at <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query += " ORDER BY o.created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		var cashierName string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.Status, &o.Subtotal, &o.DiscountAmount,
			&o.TaxAmount, &o.Total, &o.PaymentMethod, &o.Note, &o.CashierID,
			&o.CreatedAt, &o.UpdatedAt, &cashierName,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		o.Cashier = &Cashier{Name: cashierName}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) > 0 {
		ids := make([]string, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		itemsByOrder, err := r.FetchOrderItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			o.Items = itemsByOrder[o.ID]
		}
	}

	log.Debug("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *repository) CountOrders(ctx context.Context, filter ListFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM orders o WHERE 1=1`
	args := []any{}
	argIndex := 1

	if filter.Status != nil && *filter.Status != "" {
		query += fmt.Sprintf(" AND o.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND o.created_at >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND o.created_at <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	var total int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *repository) FetchOrderItems(ctx context.Context, orderIDs []string) (map[string][]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.subtotal,
		       p.name, p.sku
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]*OrderItem, len(orderIDs))
	for rows.Next() {
		var item OrderItem
		var p ItemProduct
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.Subtotal, &p.Name, &p.SKU,
		); err != nil {
			return nil, err
		}
		item.Product = &p
		items[item.OrderID] = append(items[item.OrderID], &item)
	}
	return items, rows.Err()
}
