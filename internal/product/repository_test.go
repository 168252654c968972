package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "sku", "barcode", "description", "price", "cost",
		"image_url", "category_id", "is_active", "created_at", "updated_at",
		"c_id", "c_name", "c_color", "c_sort_order", "c_is_active", "c_created_at", "c_updated_at",
		"quantity", "min_quantity",
	}).AddRow(
		"p-1", "Mineral Water", "DRK001", nil, nil, 20.0, 10.0,
		nil, "c-1", true, now, now,
		"c-1", "Drinks", "#1890ff", 1, true, now, now,
		100, 5,
	)
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)SELECT.*FROM products p.*WHERE p.is_active = TRUE ORDER BY p.name ASC`).
		WillReturnRows(productRows())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "DRK001", products[0].SKU)
	assert.Equal(t, "Drinks", products[0].Category.Name)
	require.NotNil(t, products[0].Inventory)
	assert.Equal(t, 100, products[0].Inventory.Quantity)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)SELECT.*FROM products p.*WHERE p.id = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRepository_CreateWithStock(t *testing.T) {
	ctx := context.Background()

	t.Run("BooksOpeningBalanceThroughLedger", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO products`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO inventories`).
			WithArgs(sqlmock.AnyArg(), "p-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT id FROM inventories WHERE product_id = \$1`).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-1"))
		mock.ExpectExec(`UPDATE inventories\s+SET quantity = quantity \+ \$1`).
			WithArgs(30, "inv-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO inventory_movements`).
			WithArgs(sqlmock.AnyArg(), "inv-1", "IN", 30, "initial stock").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		p := &Product{ID: "p-1", Name: "Rice Ball", SKU: "FD001", Price: 40, CategoryID: "c-2"}
		err = repo.CreateWithStock(ctx, p, 30)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ZeroStockSkipsMovement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO products`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO inventories`).
			WithArgs(sqlmock.AnyArg(), "p-2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		p := &Product{ID: "p-2", Name: "Sandwich", SKU: "FD002", Price: 55, CategoryID: "c-2"}
		err = repo.CreateWithStock(ctx, p, 0)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
