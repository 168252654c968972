package report

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_SalesSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"today_revenue", "today_orders", "month_revenue", "month_orders", "total_orders",
	}).AddRow(155.0, 3, 2040.5, 41, 120)

	mock.ExpectQuery(`(?s)SELECT.*FROM orders`).
		WithArgs(dayStart, monthStart).
		WillReturnRows(rows)

	s, err := repo.SalesSummary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 155.0, s.TodayRevenue)
	assert.Equal(t, int64(3), s.TodayOrders)
	assert.Equal(t, 2040.5, s.MonthRevenue)
	assert.Equal(t, int64(41), s.MonthOrders)
	assert.Equal(t, int64(120), s.TotalOrders)
}

func TestRepository_DailySales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	since := time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"day", "revenue", "orders"}).
		AddRow(time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), 310.0, 7).
		AddRow(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 55.0, 1)

	mock.ExpectQuery(`(?s)SELECT DATE_TRUNC\('day', created_at\).*GROUP BY day\s+ORDER BY day ASC`).
		WithArgs(since).
		WillReturnRows(rows)

	series, err := repo.DailySales(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 310.0, series[0].Revenue)
	assert.Equal(t, int64(1), series[1].Orders)
}

func TestRepository_TopProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	since := time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"product_id", "name", "sku", "quantity", "revenue"}).
		AddRow("p-1", "Mineral Water", "DRK001", 42, 840.0).
		AddRow("p-2", "Instant Noodles", "FOD001", 30, 450.0)

	mock.ExpectQuery(`(?s)SELECT oi.product_id, p.name, p.sku.*ORDER BY SUM\(oi.quantity\) DESC\s+LIMIT \$2`).
		WithArgs(since, 10).
		WillReturnRows(rows)

	top, err := repo.TopProducts(context.Background(), since, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Mineral Water", top[0].Name)
	assert.Equal(t, int64(42), top[0].Quantity)
}
