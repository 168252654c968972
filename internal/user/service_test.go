package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, fields map[string]any) (*User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hashed, err := HashPassword("admin123")
	require.NoError(t, err)

	active := &User{ID: "u-1", Name: "Alice", Email: "alice@pos.com", Password: hashed, Role: RoleAdmin, IsActive: true}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "alice@pos.com").Return(active, nil)

		token, u, err := NewService(repo).Login(ctx, "alice@pos.com", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "alice@pos.com").Return(active, nil)

		_, _, err := NewService(repo).Login(ctx, "alice@pos.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "ghost@pos.com").Return(nil, ErrUserNotFound)

		_, _, err := NewService(repo).Login(ctx, "ghost@pos.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false

		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "alice@pos.com").Return(&inactive, nil)

		_, _, err := NewService(repo).Login(ctx, "alice@pos.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "alice@pos.com").Return(&User{ID: "u-1"}, nil)

		_, err := NewService(repo).Create(ctx, CreateUserInput{
			Name: "Alice", Email: "alice@pos.com", Password: "pw", Role: RoleCashier,
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := NewService(new(MockRepository)).Create(ctx, CreateUserInput{Name: "Alice"})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := NewService(new(MockRepository)).Create(ctx, CreateUserInput{
			Name: "Alice", Email: "a@pos.com", Password: "pw", Role: Role("SUPERVISOR"),
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "bob@pos.com").Return(nil, ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)
		repo.On("GetByID", ctx, mock.AnythingOfType("string")).
			Return(&User{ID: "u-2", Name: "Bob", Role: RoleCashier, IsActive: true}, nil)

		u, err := NewService(repo).Create(ctx, CreateUserInput{
			Name: "Bob", Email: "bob@pos.com", Password: "pw", Role: RoleCashier,
		})
		require.NoError(t, err)
		assert.Equal(t, "u-2", u.ID)
		repo.AssertExpectations(t)
	})
}

func TestService_SelfProtection(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(MockRepository))

	t.Run("CannotDeactivateSelfViaUpdate", func(t *testing.T) {
		inactive := false
		_, err := svc.Update(ctx, "u-1", "u-1", UpdateUserInput{IsActive: &inactive})
		assert.ErrorIs(t, err, ErrSelfDeactivate)
	})

	t.Run("CannotDeleteSelf", func(t *testing.T) {
		assert.ErrorIs(t, svc.Deactivate(ctx, "u-1", "u-1"), ErrSelfDeactivate)
	})
}
