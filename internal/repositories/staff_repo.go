package repositories

import (
	"context"

	"restopos/internal/models"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, staffID int64) (*models.Staff, error)
	GetByUsername(ctx context.Context, username string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	List(ctx context.Context) ([]*models.Staff, error)
}

type staffRepo struct {
	db Database
}

func NewStaffRepository(db Database) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (restaurant_id, is_manager, name, email, username, hashed_password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING staff_id
	`
	return r.db.QueryRow(ctx, query,
		staff.RestaurantID, staff.IsManager, staff.Name, staff.Email, staff.Username, staff.HashedPassword,
	).Scan(&staff.StaffID)
}

func (r *staffRepo) GetByID(ctx context.Context, staffID int64) (*models.Staff, error) {
	return r.getBy(ctx, `WHERE staff_id = $1`, staffID)
}

func (r *staffRepo) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *staffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *staffRepo) getBy(ctx context.Context, where string, arg any) (*models.Staff, error) {
	staff := &models.Staff{}
	query := `
		SELECT staff_id, restaurant_id, is_manager, name, email, username, hashed_password
		FROM staff
	` + where
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.StaffID, &staff.RestaurantID, &staff.IsManager, &staff.Name, &staff.Email, &staff.Username, &staff.HashedPassword,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepo) List(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT staff_id, restaurant_id, is_manager, name, email, username, hashed_password
		FROM staff
		ORDER BY staff_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffList []*models.Staff
	for rows.Next() {
		staff := &models.Staff{}
		if err := rows.Scan(
			&staff.StaffID, &staff.RestaurantID, &staff.IsManager, &staff.Name, &staff.Email, &staff.Username, &staff.HashedPassword,
		); err != nil {
			return nil, err
		}
		staffList = append(staffList, staff)
	}
	return staffList, rows.Err()
}
