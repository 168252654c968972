package report

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	SalesSummary(ctx context.Context, now time.Time) (*SalesSummary, error)
	DailySales(ctx context.Context, since time.Time) ([]*DailySales, error)
	TopProducts(ctx context.Context, since time.Time, limit int) ([]*TopProduct, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SalesSummary(ctx context.Context, now time.Time) (*SalesSummary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var s SalesSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(total) FILTER (WHERE status = 'COMPLETED' AND created_at >= $1), 0),
			COUNT(*) FILTER (WHERE status = 'COMPLETED' AND created_at >= $1),
			COALESCE(SUM(total) FILTER (WHERE status = 'COMPLETED' AND created_at >= $2), 0),
			COUNT(*) FILTER (WHERE status = 'COMPLETED' AND created_at >= $2),
			COUNT(*)
		FROM orders
	`, dayStart, monthStart).Scan(
		&s.TodayRevenue, &s.TodayOrders, &s.MonthRevenue, &s.MonthOrders, &s.TotalOrders,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) DailySales(ctx context.Context, since time.Time) ([]*DailySales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE_TRUNC('day', created_at) AS day,
		       COALESCE(SUM(total), 0),
		       COUNT(*)
		FROM orders
		WHERE status = 'COMPLETED' AND created_at >= $1
		GROUP BY day
		ORDER BY day ASC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []*DailySales
	for rows.Next() {
		var d DailySales
		if err := rows.Scan(&d.Date, &d.Revenue, &d.Orders); err != nil {
			return nil, err
		}
		series = append(series, &d)
	}
	return series, rows.Err()
}

func (r *repository) TopProducts(ctx context.Context, since time.Time, limit int) ([]*TopProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.product_id, p.name, p.sku,
		       SUM(oi.quantity),
		       SUM(oi.subtotal)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status = 'COMPLETED' AND o.created_at >= $1
		GROUP BY oi.product_id, p.name, p.sku
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []*TopProduct
	for rows.Next() {
		var t TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.SKU, &t.Quantity, &t.Revenue); err != nil {
			return nil, err
		}
		top = append(top, &t)
	}
	return top, rows.Err()
}
