package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"restopos/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

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

type RestockAlertTestSuite struct {
	suite.Suite
	reportRepo *MockReportRepository
	service    *RestockAlertService
	ctx        context.Context
}

func (suite *RestockAlertTestSuite) SetupTest() {
	suite.reportRepo = &MockReportRepository{}
	suite.service = NewRestockAlertService(suite.reportRepo, 5)
	suite.ctx = context.Background()

	suite.reportRepo.Test(suite.T())
}

func (suite *RestockAlertTestSuite) TearDownTest() {
	suite.reportRepo.AssertExpectations(suite.T())
}

func TestRestockAlertTestSuite(t *testing.T) {
	suite.Run(t, new(RestockAlertTestSuite))
}

func (suite *RestockAlertTestSuite) TestCheckLowStock_UsesConfiguredThreshold() {
	items := []*models.InventoryItem{
		{InventoryID: 2, Name: "Patty", Quantity: -4},
		{InventoryID: 1, Name: "Bun", Quantity: 3},
	}
	suite.reportRepo.On("RestockReport", suite.ctx, 5).Return(items, nil)

	got, err := suite.service.CheckLowStock(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), items, got)
}

func (suite *RestockAlertTestSuite) TestScheduledLowStockCheck_PropagatesFailure() {
	suite.reportRepo.On("RestockReport", suite.ctx, 5).Return(nil, errors.New("db down"))

	err := suite.service.ScheduledLowStockCheck(suite.ctx)
	assert.Error(suite.T(), err)
}

func (suite *RestockAlertTestSuite) TestScheduledLowStockCheck_Success() {
	suite.reportRepo.On("RestockReport", suite.ctx, 5).
		Return([]*models.InventoryItem{{InventoryID: 1, Name: "Bun", Quantity: 2}}, nil)

	err := suite.service.ScheduledLowStockCheck(suite.ctx)
	assert.NoError(suite.T(), err)
}

func TestNewRestockAlertService_DefaultsThreshold(t *testing.T) {
	svc := NewRestockAlertService(&MockReportRepository{}, 0)
	assert.Equal(t, defaultRestockThreshold, svc.threshold)
}
