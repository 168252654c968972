package report

import (
	"context"
	"time"

	"github.com/Sean861026/pos-system/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultRangeDays   = 30
	maxRangeDays       = 365
	defaultTopProducts = 10
	maxTopProducts     = 50
)

type Service interface {
	Summary(ctx context.Context) (*SalesSummary, error)
	DailySales(ctx context.Context, days int) ([]*DailySales, error)
	TopProducts(ctx context.Context, days, limit int) ([]*TopProduct, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func clampDays(days int) int {
	if days < 1 {
		return defaultRangeDays
	}
	if days > maxRangeDays {
		return maxRangeDays
	}
	return days
}

func (s *service) Summary(ctx context.Context) (*SalesSummary, error) {
	summary, err := s.repo.SalesSummary(ctx, s.now())
	if err != nil {
		logger.FromCtx(ctx).Error("failed to build sales summary", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (s *service) DailySales(ctx context.Context, days int) ([]*DailySales, error) {
	days = clampDays(days)
	since := s.now().AddDate(0, 0, -days)
	return s.repo.DailySales(ctx, since)
}

func (s *service) TopProducts(ctx context.Context, days, limit int) ([]*TopProduct, error) {
	days = clampDays(days)
	if limit < 1 {
		limit = defaultTopProducts
	}
	if limit > maxTopProducts {
		limit = maxTopProducts
	}
	since := s.now().AddDate(0, 0, -days)
	return s.repo.TopProducts(ctx, since, limit)
}
