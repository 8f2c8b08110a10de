package repositories

import (
	"context"

	"restopos/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type MenuRepository interface {
	// Create inserts the menu row and its composition rows in one
	// transaction; on any failure nothing is persisted.
	Create(ctx context.Context, item *models.MenuItem) error
	// Delete removes composition rows, order-line references, then the menu
	// row itself, atomically.
	Delete(ctx context.Context, menuID int64) error
	GetByID(ctx context.Context, menuID int64) (*models.MenuItem, error)
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	List(ctx context.Context) ([]*models.MenuItem, error)
	ListDetailed(ctx context.Context) ([]*models.MenuItem, error)
	ListByType(ctx context.Context, foodType string) ([]*models.MenuItem, error)
	CompositionByMenuID(ctx context.Context, menuID int64) ([]models.MenuIngredient, error)
	UpdatePriceByID(ctx context.Context, menuID int64, price decimal.Decimal) error
	UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error
}

type menuRepo struct {
	db Database
}

func NewMenuRepository(db Database) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO menu (name, price, type)
			VALUES ($1, $2, $3)
			RETURNING menu_id
		`
		if err := tx.QueryRow(ctx, query, item.Name, item.Price, item.Type).Scan(&item.MenuID); err != nil {
			return err
		}

		for i := range item.Ingredients {
			ing := &item.Ingredients[i]
			ing.MenuID = item.MenuID
			_, err := tx.Exec(ctx, `
				INSERT INTO inventory_to_menu (inventory_id, menu_id, quantity)
				VALUES ($1, $2, $3)
			`, ing.InventoryID, ing.MenuID, ing.Quantity)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *menuRepo) Delete(ctx context.Context, menuID int64) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM inventory_to_menu WHERE menu_id = $1`, menuID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM menu_to_order WHERE menu_id = $1`, menuID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM menu WHERE menu_id = $1`, menuID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *menuRepo) GetByID(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `
		SELECT menu_id, name, price, type
		FROM menu
		WHERE menu_id = $1
	`
	err := r.db.QueryRow(ctx, query, menuID).Scan(&item.MenuID, &item.Name, &item.Price, &item.Type)
	if err != nil {
		return nil, err
	}
	item.Ingredients, err = r.CompositionByMenuID(ctx, item.MenuID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuRepo) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `
		SELECT menu_id, name, price, type
		FROM menu
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&item.MenuID, &item.Name, &item.Price, &item.Type)
	if err != nil {
		return nil, err
	}
	item.Ingredients, err = r.CompositionByMenuID(ctx, item.MenuID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns bare menu rows without composition expansion.
func (r *menuRepo) List(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
		SELECT menu_id, name, price, type
		FROM menu
		ORDER BY menu_id
	`
	return r.scanMenuRows(ctx, query)
}

// ListDetailed returns menu rows with each item's composition attached.
func (r *menuRepo) ListDetailed(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Ingredients, err = r.CompositionByMenuID(ctx, item.MenuID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *menuRepo) ListByType(ctx context.Context, foodType string) ([]*models.MenuItem, error) {
	query := `
		SELECT menu_id, name, price, type
		FROM menu
		WHERE type = $1
		ORDER BY menu_id
	`
	items, err := r.scanMenuRows(ctx, query, foodType)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Ingredients, err = r.CompositionByMenuID(ctx, item.MenuID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *menuRepo) CompositionByMenuID(ctx context.Context, menuID int64) ([]models.MenuIngredient, error) {
	query := `
		SELECT inventory_id, menu_id, quantity
		FROM inventory_to_menu
		WHERE menu_id = $1
	`
	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []models.MenuIngredient
	for rows.Next() {
		var ing models.MenuIngredient
		if err := rows.Scan(&ing.InventoryID, &ing.MenuID, &ing.Quantity); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *menuRepo) UpdatePriceByID(ctx context.Context, menuID int64, price decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE menu SET price = $1 WHERE menu_id = $2`, price, menuID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepo) UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE menu SET price = $1 WHERE name = $2`, price, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepo) scanMenuRows(ctx context.Context, query string, args ...any) ([]*models.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.MenuID, &item.Name, &item.Price, &item.Type); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
