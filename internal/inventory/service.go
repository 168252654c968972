package inventory

import (
	"context"

	"github.com/Sean861026/pos-system/internal/logger"

	"go.uber.org/zap"
)

// movementPageSize bounds the movement history returned per product.
const movementPageSize = 50

type Service interface {
	List(ctx context.Context) ([]*Inventory, error)
	ListLowStock(ctx context.Context) ([]*Inventory, error)
	Movements(ctx context.Context, productID string) ([]*Movement, error)
	Adjust(ctx context.Context, productID string, delta int, note string) (*Inventory, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Inventory, error) {
	inventories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range inventories {
		inv.IsLowStock = inv.LowStock()
	}
	return inventories, nil
}

func (s *service) ListLowStock(ctx context.Context) ([]*Inventory, error) {
	inventories, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range inventories {
		inv.IsLowStock = true
	}
	return inventories, nil
}

func (s *service) Movements(ctx context.Context, productID string) ([]*Movement, error) {
	return s.repo.ListMovements(ctx, productID, movementPageSize)
}

func (s *service) Adjust(ctx context.Context, productID string, delta int, note string) (*Inventory, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Adjust"),
		zap.String("product_id", productID),
		zap.Int("delta", delta),
	)

	if delta == 0 {
		return nil, ErrZeroAdjustment
	}
	if note == "" {
		note = "manual adjustment"
	}

	inv, err := s.repo.Adjust(ctx, productID, delta, note)
	if err != nil {
		log.Warn("stock adjustment rejected", zap.Error(err))
		return nil, err
	}

	inv.IsLowStock = inv.LowStock()
	log.Info("stock adjusted", zap.Int("quantity", inv.Quantity))
	return inv, nil
}
