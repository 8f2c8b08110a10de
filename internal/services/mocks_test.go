package services

import (
	"context"
	"time"

	"restopos/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	args := m.Called(ctx, name, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SetQuantityByID(ctx context.Context, id int64, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockInventoryRepository) SetQuantityByName(ctx context.Context, name string, quantity int) error {
	args := m.Called(ctx, name, quantity)
	return args.Error(0)
}

func (m *MockInventoryRepository) AddQuantity(ctx context.Context, id int64, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockInventoryRepository) SubtractQuantity(ctx context.Context, id int64, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, menuID int64) error {
	args := m.Called(ctx, menuID)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListDetailed(ctx context.Context) ([]*models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListByType(ctx context.Context, foodType string) ([]*models.MenuItem, error) {
	args := m.Called(ctx, foodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) CompositionByMenuID(ctx context.Context, menuID int64) ([]models.MenuIngredient, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuIngredient), args.Error(1)
}

func (m *MockMenuRepository) UpdatePriceByID(ctx context.Context, menuID int64, price decimal.Decimal) error {
	args := m.Called(ctx, menuID, price)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error {
	args := m.Called(ctx, name, price)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Place(ctx context.Context, order *models.Order, lines []models.OrderLine) (int64, error) {
	args := m.Called(ctx, order, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Cancel(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListSince(ctx context.Context, date time.Time) ([]*models.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdatePrice(ctx context.Context, orderID int64, costTotal decimal.Decimal) error {
	args := m.Called(ctx, orderID, costTotal)
	return args.Error(0)
}

func (m *MockOrderRepository) UpsertLine(ctx context.Context, orderID, menuID int64, quantity int) error {
	args := m.Called(ctx, orderID, menuID, quantity)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveLine(ctx context.Context, orderID, menuID int64) error {
	args := m.Called(ctx, orderID, menuID)
	return args.Error(0)
}

func (m *MockOrderRepository) LinesByOrderID(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderLine), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SalesReport(ctx context.Context, start, end time.Time) ([]models.SalesReportRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalesReportRow), args.Error(1)
}

func (m *MockReportRepository) RestockReport(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockReportRepository) InventorySalesSince(ctx context.Context, since time.Time) ([]models.InventorySalesRow, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventorySalesRow), args.Error(1)
}

func (m *MockReportRepository) TotalSalesToday(ctx context.Context, restaurantID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportRepository) TotalSalesSinceLastZ(ctx context.Context, restaurantID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportRepository) LatestZReportDate(ctx context.Context, restaurantID int64) (time.Time, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockReportRepository) InsertZReport(ctx context.Context, totalSales decimal.Decimal, restaurantID int64) (*models.ZReport, error) {
	args := m.Called(ctx, totalSales, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZReport), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, staffID int64) (*models.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]*models.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Staff), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockCacheService) SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error {
	args := m.Called(ctx, item, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteMenuItem(ctx context.Context, menuID int64) error {
	args := m.Called(ctx, menuID)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateMenu(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) GetXReport(ctx context.Context, restaurantID int64) (*models.XReport, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.XReport), args.Error(1)
}

func (m *MockCacheService) SetXReport(ctx context.Context, report *models.XReport, ttl time.Duration) error {
	args := m.Called(ctx, report, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteXReport(ctx context.Context, restaurantID int64) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockCacheService) Close() error {
	args := m.Called()
	return args.Error(0)
}
