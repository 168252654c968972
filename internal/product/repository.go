package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sean861026/pos-system/internal/category"
	"github.com/Sean861026/pos-system/internal/inventory"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	CreateWithStock(ctx context.Context, p *Product, initialStock int) error
	Update(ctx context.Context, p *Product) error
	Deactivate(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT
		p.id, p.name, p.sku, p.barcode, p.description, p.price, p.cost,
		p.image_url, p.category_id, p.is_active, p.created_at, p.updated_at,
		c.id, c.name, c.color, c.sort_order, c.is_active, c.created_at, c.updated_at,
		i.quantity, i.min_quantity
	FROM products p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN inventories i ON i.product_id = p.id
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	var c category.Category
	var quantity, minQuantity sql.NullInt64

	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Barcode, &p.Description, &p.Price, &p.Cost,
		&p.ImageURL, &p.CategoryID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Color, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&quantity, &minQuantity,
	)
	if err != nil {
		return nil, err
	}

	p.Category = &c
	if quantity.Valid {
		p.Inventory = &StockInfo{
			Quantity:    int(quantity.Int64),
			MinQuantity: int(minQuantity.Int64),
		}
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` WHERE p.is_active = TRUE ORDER BY p.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// CreateWithStock inserts the product together with its inventory row, and
// when an opening balance is given, books it through the ledger as an IN
// movement. One transaction covers all three writes.
func (r *repository) CreateWithStock(ctx context.Context, p *Product, initialStock int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, name, sku, barcode, description, price, cost, image_url, category_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
	`, p.ID, p.Name, p.SKU, p.Barcode, p.Description, p.Price, p.Cost, p.ImageURL, p.CategoryID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return ErrSKUExists
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventories (id, product_id, quantity, min_quantity)
		VALUES ($1, $2, 0, 5)
	`, uuid.NewString(), p.ID)
	if err != nil {
		return err
	}

	if initialStock > 0 {
		if err := inventory.ApplyMovement(ctx, tx, p.ID, initialStock, inventory.MovementIn, "initial stock"); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, sku = $2, barcode = $3, description = $4, price = $5,
		    cost = $6, image_url = $7, category_id = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Name, p.SKU, p.Barcode, p.Description, p.Price, p.Cost, p.ImageURL, p.CategoryID, p.IsActive, p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return ErrSKUExists
		}
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
