package repositories

import (
	"context"

	"restopos/internal/models"

	"github.com/jackc/pgx/v5"
)

type RestaurantRepository interface {
	List(ctx context.Context) ([]*models.Restaurant, error)
	// UpdateRevenue recomputes the restaurant's revenue as the sum of all
	// order totals and stores it on the restaurant row.
	UpdateRevenue(ctx context.Context, restaurantID int64) error
}

type restaurantRepo struct {
	db Database
}

func NewRestaurantRepository(db Database) RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) List(ctx context.Context) ([]*models.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, revenue
		FROM restaurant
		ORDER BY restaurant_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		restaurant := &models.Restaurant{}
		if err := rows.Scan(&restaurant.RestaurantID, &restaurant.Name, &restaurant.Revenue); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *restaurantRepo) UpdateRevenue(ctx context.Context, restaurantID int64) error {
	query := `
		UPDATE restaurant
		SET revenue = (SELECT COALESCE(SUM(cost_total), 0) FROM orders)
		WHERE restaurant_id = $1
	`
	tag, err := r.db.Exec(ctx, query, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
