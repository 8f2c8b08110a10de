package repositories

import (
	"context"
	"time"

	"restopos/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// Place creates the order row, its line items, and the matching inventory
	// decrements in a single transaction. On any failure the whole order is
	// rolled back: no order row, no lines, no stock change.
	Place(ctx context.Context, order *models.Order, lines []models.OrderLine) (int64, error)
	// Cancel removes the order's line items and the order row atomically.
	// Inventory consumed by the order is not restored.
	Cancel(ctx context.Context, orderID int64) error
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Order, error)
	ListSince(ctx context.Context, date time.Time) ([]*models.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Order, error)
	UpdatePrice(ctx context.Context, orderID int64, costTotal decimal.Decimal) error
	// UpsertLine adds quantity to the order's line for menuID, creating the
	// line when absent. One line per (order, menu item) pair.
	UpsertLine(ctx context.Context, orderID, menuID int64, quantity int) error
	RemoveLine(ctx context.Context, orderID, menuID int64) error
	LinesByOrderID(ctx context.Context, orderID int64) ([]models.OrderLine, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepository(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Place(ctx context.Context, order *models.Order, lines []models.OrderLine) (int64, error) {
	var orderID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (cost_total, date, customer_id, staff_id)
			VALUES ($1, $2, $3, $4)
			RETURNING order_id
		`
		if err := tx.QueryRow(ctx, query, order.CostTotal, order.Date, order.CustomerID, order.StaffID).Scan(&orderID); err != nil {
			return err
		}

		for _, line := range lines {
			_, err := tx.Exec(ctx, `
				INSERT INTO menu_to_order (menu_id, order_id, quantity)
				VALUES ($1, $2, $3)
			`, line.MenuID, orderID, line.Quantity)
			if err != nil {
				return err
			}
		}

		for _, line := range lines {
			rows, err := tx.Query(ctx, `
				SELECT inventory_id, quantity
				FROM inventory_to_menu
				WHERE menu_id = $1
			`, line.MenuID)
			if err != nil {
				return err
			}

			type decrement struct {
				inventoryID int64
				amount      int
			}
			var decrements []decrement
			for rows.Next() {
				var d decrement
				var perUnit int
				if err := rows.Scan(&d.inventoryID, &perUnit); err != nil {
					rows.Close()
					return err
				}
				d.amount = perUnit * line.Quantity
				decrements = append(decrements, d)
			}
			rows.Close()
			if err := rows.Err(); err != nil {
				return err
			}

			for _, d := range decrements {
				_, err := tx.Exec(ctx, `
					UPDATE inventory SET quantity = quantity - $1 WHERE inventory_id = $2
				`, d.amount, d.inventoryID)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	order.OrderID = orderID
	return orderID, nil
}

func (r *orderRepo) Cancel(ctx context.Context, orderID int64) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM menu_to_order WHERE order_id = $1`, orderID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *orderRepo) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		WHERE order_id = $1
	`
	err := r.db.QueryRow(ctx, query, orderID).Scan(&order.OrderID, &order.CostTotal, &order.Date, &order.CustomerID, &order.StaffID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		ORDER BY order_id
	`
	return r.scanOrderRows(ctx, query)
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		WHERE customer_id = $1
	`
	return r.scanOrderRows(ctx, query, customerID)
}

func (r *orderRepo) ListByDate(ctx context.Context, date time.Time) ([]*models.Order, error) {
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		WHERE date = $1
	`
	return r.scanOrderRows(ctx, query, date)
}

func (r *orderRepo) ListSince(ctx context.Context, date time.Time) ([]*models.Order, error) {
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		WHERE date >= $1
	`
	return r.scanOrderRows(ctx, query, date)
}

func (r *orderRepo) ListRecent(ctx context.Context, limit int) ([]*models.Order, error) {
	query := `
		SELECT order_id, cost_total, date, customer_id, staff_id
		FROM orders
		ORDER BY date DESC
		LIMIT $1
	`
	return r.scanOrderRows(ctx, query, limit)
}

func (r *orderRepo) UpdatePrice(ctx context.Context, orderID int64, costTotal decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET cost_total = $1 WHERE order_id = $2`, costTotal, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepo) UpsertLine(ctx context.Context, orderID, menuID int64, quantity int) error {
	query := `
		INSERT INTO menu_to_order (menu_id, order_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (menu_id, order_id) DO UPDATE SET quantity = menu_to_order.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, menuID, orderID, quantity)
	return err
}

func (r *orderRepo) RemoveLine(ctx context.Context, orderID, menuID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_to_order WHERE menu_id = $1 AND order_id = $2`, menuID, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepo) LinesByOrderID(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	query := `
		SELECT menu_id, order_id, quantity
		FROM menu_to_order
		WHERE order_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.MenuID, &line.OrderID, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *orderRepo) scanOrderRows(ctx context.Context, query string, args ...any) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.OrderID, &order.CostTotal, &order.Date, &order.CustomerID, &order.StaffID); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
