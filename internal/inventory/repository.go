package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so ledger writes can run
// inside a caller-owned transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ApplyMovement is the single write path for stock. It applies the signed
// delta to the inventory row and appends the matching movement entry on the
// same handle, so a transactional caller gets both writes or neither.
//
// The conditional UPDATE is the non-negative backstop: a concurrent writer
// that would drive quantity below zero affects no rows and the whole
// enclosing transaction aborts with ErrInsufficientStock.
func ApplyMovement(ctx context.Context, dbtx DBTX, productID string, delta int, mtype MovementType, note string) error {
	var inventoryID string
	err := dbtx.QueryRowContext(ctx,
		`SELECT id FROM inventories WHERE product_id = $1`, productID,
	).Scan(&inventoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: product %s", ErrInventoryNotFound, productID)
	}
	if err != nil {
		return err
	}

	res, err := dbtx.ExecContext(ctx, `
		UPDATE inventories
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND quantity + $1 >= 0
	`, delta, inventoryID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s", ErrInsufficientStock, productID)
	}

	_, err = dbtx.ExecContext(ctx, `
		INSERT INTO inventory_movements (id, inventory_id, type, quantity, note)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), inventoryID, mtype, delta, note)
	return err
}

type Repository interface {
	List(ctx context.Context) ([]*Inventory, error)
	ListLowStock(ctx context.Context) ([]*Inventory, error)
	GetByProductID(ctx context.Context, productID string) (*Inventory, error)
	ListMovements(ctx context.Context, productID string, limit int) ([]*Movement, error)
	Adjust(ctx context.Context, productID string, delta int, note string) (*Inventory, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const inventorySelect = `
	SELECT
		i.id, i.product_id, i.quantity, i.min_quantity, i.created_at, i.updated_at,
		p.name, p.sku, p.price, c.name
	FROM inventories i
	JOIN products p ON p.id = i.product_id
	LEFT JOIN categories c ON c.id = p.category_id
`

func scanInventory(row interface{ Scan(...any) error }) (*Inventory, error) {
	var inv Inventory
	var p ProductInfo
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.MinQuantity,
		&inv.CreatedAt, &inv.UpdatedAt,
		&p.Name, &p.SKU, &p.Price, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	p.ID = inv.ProductID
	inv.Product = &p
	return &inv, nil
}

func (r *repository) queryInventories(ctx context.Context, query string, args ...any) ([]*Inventory, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inventories []*Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		inventories = append(inventories, inv)
	}
	return inventories, rows.Err()
}

func (r *repository) List(ctx context.Context) ([]*Inventory, error) {
	return r.queryInventories(ctx, inventorySelect+` ORDER BY p.name ASC`)
}

func (r *repository) ListLowStock(ctx context.Context) ([]*Inventory, error) {
	return r.queryInventories(ctx,
		inventorySelect+` WHERE i.quantity <= i.min_quantity ORDER BY p.name ASC`)
}

func (r *repository) GetByProductID(ctx context.Context, productID string) (*Inventory, error) {
	inv, err := scanInventory(r.db.QueryRowContext(ctx,
		inventorySelect+` WHERE i.product_id = $1`, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInventoryNotFound
	}
	return inv, err
}

func (r *repository) ListMovements(ctx context.Context, productID string, limit int) ([]*Movement, error) {
	var inventoryID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM inventories WHERE product_id = $1`, productID,
	).Scan(&inventoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInventoryNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, quantity, note, created_at
		FROM inventory_movements
		WHERE inventory_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, inventoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*Movement
	for rows.Next() {
		var m Movement
		if err := rows.Scan(&m.ID, &m.Type, &m.Quantity, &m.Note, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// Adjust applies a manual signed correction as one atomic unit: the quantity
// update and its ADJUSTMENT movement commit together or not at all.
func (r *repository) Adjust(ctx context.Context, productID string, delta int, note string) (*Inventory, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := ApplyMovement(ctx, tx, productID, delta, MovementAdjustment, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	return r.GetByProductID(ctx, productID)
}
