package repositories

import (
	"context"
	"errors"

	"restopos/internal/models"

	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	Create(ctx context.Context, name string, quantity int) (*models.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	GetByName(ctx context.Context, name string) (*models.InventoryItem, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
	SetQuantityByID(ctx context.Context, id int64, quantity int) error
	SetQuantityByName(ctx context.Context, name string, quantity int) error
	AddQuantity(ctx context.Context, id int64, delta int) error
	SubtractQuantity(ctx context.Context, id int64, delta int) error
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	item := &models.InventoryItem{Name: name, Quantity: quantity}
	query := `
		INSERT INTO inventory (name, quantity)
		VALUES ($1, $2)
		RETURNING inventory_id
	`
	err := r.db.QueryRow(ctx, query, name, quantity).Scan(&item.InventoryID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `
		SELECT inventory_id, name, quantity
		FROM inventory
		WHERE inventory_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.InventoryID, &item.Name, &item.Quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) GetByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `
		SELECT inventory_id, name, quantity
		FROM inventory
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&item.InventoryID, &item.Name, &item.Quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT inventory_id, name, quantity
		FROM inventory
		ORDER BY inventory_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(&item.InventoryID, &item.Name, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *inventoryRepo) SetQuantityByID(ctx context.Context, id int64, quantity int) error {
	query := `UPDATE inventory SET quantity = $1 WHERE inventory_id = $2`
	tag, err := r.db.Exec(ctx, query, quantity, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepo) SetQuantityByName(ctx context.Context, name string, quantity int) error {
	query := `UPDATE inventory SET quantity = $1 WHERE name = $2`
	tag, err := r.db.Exec(ctx, query, quantity, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepo) AddQuantity(ctx context.Context, id int64, delta int) error {
	query := `UPDATE inventory SET quantity = quantity + $1 WHERE inventory_id = $2`
	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SubtractQuantity decrements stock without a floor. Negative quantities are
// allowed and left for the restock report to surface.
func (r *inventoryRepo) SubtractQuantity(ctx context.Context, id int64, delta int) error {
	query := `UPDATE inventory SET quantity = quantity - $1 WHERE inventory_id = $2`
	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IsNotFound reports whether err is the no-rows condition from any lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
