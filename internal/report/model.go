package report

import "time"

// SalesSummary aggregates revenue over COMPLETED orders only; refunded and
// cancelled orders never count toward revenue.
type SalesSummary struct {
	TodayRevenue float64 `json:"todayRevenue"`
	TodayOrders  int64   `json:"todayOrders"`
	MonthRevenue float64 `json:"monthRevenue"`
	MonthOrders  int64   `json:"monthOrders"`
	TotalOrders  int64   `json:"totalOrders"`
}

// DailySales is one day's bucket of the daily revenue series.
type DailySales struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Orders  int64     `json:"orders"`
}

// TopProduct ranks catalog items by units sold on COMPLETED orders.
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int64   `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}
