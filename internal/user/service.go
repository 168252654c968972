package user

import (
	"context"
	"errors"

	"github.com/Sean861026/pos-system/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *Role
	IsActive *bool
	Password *string
}

type Service interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Update(ctx context.Context, actorID, id string, input UpdateUserInput) (*User, error)
	Deactivate(ctx context.Context, actorID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Login"))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !u.IsActive || !CheckPasswordHash(password, u.Password) {
		log.Warn("login rejected", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Name, string(u.Role))
	if err != nil {
		return "", nil, err
	}

	log.Info("login success", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, ErrMissingFields
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, u.ID)
}

func (s *service) Update(ctx context.Context, actorID, id string, input UpdateUserInput) (*User, error) {
	if actorID == id && input.IsActive != nil && !*input.IsActive {
		return nil, ErrSelfDeactivate
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		fields["role"] = string(*input.Role)
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *service) Deactivate(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDeactivate
	}
	return s.repo.Deactivate(ctx, id)
}
