package category

import (
	"context"

	"github.com/google/uuid"
)

type CreateCategoryInput struct {
	Name      string
	Color     *string
	SortOrder int
}

type UpdateCategoryInput struct {
	Name      *string
	Color     *string
	SortOrder *int
	IsActive  *bool
}

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*Category, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	c := &Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Color:     input.Color,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, c.ID)
}

func (s *service) Update(ctx context.Context, id string, input UpdateCategoryInput) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Color != nil {
		c.Color = input.Color
	}
	if input.SortOrder != nil {
		c.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
