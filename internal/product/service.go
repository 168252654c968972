package product

import (
	"context"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Name         string
	SKU          string
	Barcode      *string
	Description  *string
	Price        float64
	Cost         float64
	CategoryID   string
	ImageURL     *string
	InitialStock int
}

type UpdateProductInput struct {
	Name        *string
	SKU         *string
	Barcode     *string
	Description *string
	Price       *float64
	Cost        *float64
	CategoryID  *string
	ImageURL    *string
	IsActive    *bool
}

type Service interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input CreateProductInput) (*Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*Product, error) {
	if input.Name == "" || input.SKU == "" || input.Price <= 0 || input.CategoryID == "" {
		return nil, ErrMissingFields
	}

	p := &Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		SKU:         input.SKU,
		Barcode:     input.Barcode,
		Description: input.Description,
		Price:       input.Price,
		Cost:        input.Cost,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		IsActive:    true,
	}
	if err := s.repo.CreateWithStock(ctx, p, input.InitialStock); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, p.ID)
}

func (s *service) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.SKU != nil {
		p.SKU = *input.SKU
	}
	if input.Barcode != nil {
		p.Barcode = input.Barcode
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Cost != nil {
		p.Cost = *input.Cost
	}
	if input.CategoryID != nil {
		p.CategoryID = *input.CategoryID
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
