package category

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "color", "sort_order", "is_active", "created_at", "updated_at", "product_count",
	}).
		AddRow("c-1", "Drinks", "#1890ff", 1, true, time.Now(), time.Now(), 3).
		AddRow("c-2", "Food", "#52c41a", 2, true, time.Now(), time.Now(), 0)

	mock.ExpectQuery(`(?s)SELECT.*FROM categories c.*LEFT JOIN products p.*ORDER BY c.sort_order ASC`).
		WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Drinks", categories[0].Name)
	assert.Equal(t, 3, categories[0].ProductCount)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)SELECT.*FROM categories WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`(?s)UPDATE categories.*WHERE id = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &Category{ID: "ghost", Name: "X"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
