package repositories

import (
	"context"
	"errors"
	"time"

	"restopos/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNoZReports marks a restaurant with no close-out history; the X report
// falls back to today's sales when it sees this.
var ErrNoZReports = errors.New("no z reports for restaurant")

type ReportRepository interface {
	SalesReport(ctx context.Context, start, end time.Time) ([]models.SalesReportRow, error)
	RestockReport(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	InventorySalesSince(ctx context.Context, since time.Time) ([]models.InventorySalesRow, error)
	TotalSalesToday(ctx context.Context, restaurantID int64) (decimal.Decimal, error)
	TotalSalesSinceLastZ(ctx context.Context, restaurantID int64) (decimal.Decimal, error)
	LatestZReportDate(ctx context.Context, restaurantID int64) (time.Time, error)
	InsertZReport(ctx context.Context, totalSales decimal.Decimal, restaurantID int64) (*models.ZReport, error)
}

type reportRepo struct {
	db Database
}

func NewReportRepository(db Database) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) SalesReport(ctx context.Context, start, end time.Time) ([]models.SalesReportRow, error) {
	query := `
		SELECT m.menu_id, m.name, SUM(mto.quantity) AS total_qty
		FROM menu_to_order mto
		INNER JOIN menu m ON m.menu_id = mto.menu_id
		INNER JOIN orders o ON o.order_id = mto.order_id
		WHERE o.date >= $1 AND o.date <= $2
		GROUP BY m.menu_id, m.name
		ORDER BY total_qty DESC
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []models.SalesReportRow
	for rows.Next() {
		var row models.SalesReportRow
		if err := rows.Scan(&row.MenuID, &row.Name, &row.TotalQty); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *reportRepo) RestockReport(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	query := `
		SELECT inventory_id, name, quantity
		FROM inventory
		WHERE quantity <= $1
		ORDER BY quantity ASC
	`
	rows, err := r.db.Query(ctx, query, threshold)
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

func (r *reportRepo) InventorySalesSince(ctx context.Context, since time.Time) ([]models.InventorySalesRow, error) {
	query := `
		SELECT i.inventory_id, i.name, i.quantity,
			COALESCE(SUM(im.quantity * mo.quantity), 0) AS total_sold
		FROM inventory i
		LEFT JOIN inventory_to_menu im ON i.inventory_id = im.inventory_id
		LEFT JOIN menu m ON m.menu_id = im.menu_id
		LEFT JOIN menu_to_order mo ON m.menu_id = mo.menu_id
		LEFT JOIN orders o ON o.order_id = mo.order_id
		WHERE o.date >= $1
		GROUP BY i.inventory_id, i.name, i.quantity
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.InventorySalesRow
	for rows.Next() {
		var row models.InventorySalesRow
		if err := rows.Scan(&row.InventoryID, &row.Name, &row.Quantity, &row.TotalSold); err != nil {
			return nil, err
		}
		sales = append(sales, row)
	}
	return sales, rows.Err()
}

func (r *reportRepo) TotalSalesToday(ctx context.Context, restaurantID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(o.cost_total), 0)
		FROM orders o
		JOIN staff s ON o.staff_id = s.staff_id
		WHERE s.restaurant_id = $1
		AND o.date >= DATE_TRUNC('day', CURRENT_TIMESTAMP)
		AND o.date < DATE_TRUNC('day', CURRENT_TIMESTAMP) + INTERVAL '1 day'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, restaurantID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *reportRepo) TotalSalesSinceLastZ(ctx context.Context, restaurantID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(o.cost_total), 0)
		FROM orders o
		JOIN staff s ON o.staff_id = s.staff_id
		WHERE o.date > (SELECT MAX(z.report_date) FROM z_reports z WHERE z.restaurant_id = $1)
		AND o.date < CURRENT_TIMESTAMP
		AND s.restaurant_id = $1
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, restaurantID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// LatestZReportDate returns pgx.ErrNoRows via the NULL max when no Z report
// exists for the restaurant.
func (r *reportRepo) LatestZReportDate(ctx context.Context, restaurantID int64) (time.Time, error) {
	query := `
		SELECT MAX(report_date)
		FROM z_reports
		WHERE restaurant_id = $1
	`
	var latest *time.Time
	if err := r.db.QueryRow(ctx, query, restaurantID).Scan(&latest); err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return time.Time{}, ErrNoZReports
	}
	return *latest, nil
}

func (r *reportRepo) InsertZReport(ctx context.Context, totalSales decimal.Decimal, restaurantID int64) (*models.ZReport, error) {
	report := &models.ZReport{
		TotalSales:   totalSales,
		RestaurantID: restaurantID,
	}
	query := `
		INSERT INTO z_reports (report_date, total_sales, restaurant_id)
		VALUES (CURRENT_TIMESTAMP, $1, $2)
		RETURNING report_id, report_date
	`
	if err := r.db.QueryRow(ctx, query, totalSales, restaurantID).Scan(&report.ReportID, &report.ReportDate); err != nil {
		return nil, err
	}
	return report, nil
}
