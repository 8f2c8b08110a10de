package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restopos/internal/common"
	"restopos/internal/models"

	pgx "github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orderRepo *MockOrderRepository
	menuRepo  *MockMenuRepository
	service   OrderService
	ctx       context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orderRepo = &MockOrderRepository{}
	suite.menuRepo = &MockMenuRepository{}
	suite.service = NewOrderService(suite.orderRepo, suite.menuRepo)
	suite.ctx = context.Background()

	suite.orderRepo.Test(suite.T())
	suite.menuRepo.Test(suite.T())
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.orderRepo.AssertExpectations(suite.T())
	suite.menuRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (suite *OrderServiceTestSuite) TestPlace_Success() {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	lines := []models.OrderLine{{MenuID: 10, Quantity: 2}}
	suite.orderRepo.On("Place", suite.ctx, mock.MatchedBy(func(order *models.Order) bool {
		return order.CustomerID == 7 && order.StaffID == 3 && order.Date.Equal(date)
	}), lines).Return(int64(42), nil)

	orderID, err := suite.service.Place(suite.ctx, decimal.NewFromFloat(21.50), date, 7, 3, lines)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), orderID)
}

func (suite *OrderServiceTestSuite) TestPlace_EmptyLines() {
	orderID, err := suite.service.Place(suite.ctx, decimal.NewFromInt(10), time.Now(), 7, 3, nil)
	assert.Zero(suite.T(), orderID)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
	suite.orderRepo.AssertNotCalled(suite.T(), "Place")
}

func (suite *OrderServiceTestSuite) TestPlace_NegativeTotal() {
	lines := []models.OrderLine{{MenuID: 10, Quantity: 1}}
	_, err := suite.service.Place(suite.ctx, decimal.NewFromInt(-5), time.Now(), 7, 3, lines)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestPlace_QuantityAboveCap() {
	lines := []models.OrderLine{{MenuID: 10, Quantity: maxLineQuantity + 1}}
	_, err := suite.service.Place(suite.ctx, decimal.NewFromInt(10), time.Now(), 7, 3, lines)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestPlace_ZeroDateDefaultsToNow() {
	lines := []models.OrderLine{{MenuID: 10, Quantity: 1}}
	before := time.Now()
	suite.orderRepo.On("Place", suite.ctx, mock.MatchedBy(func(order *models.Order) bool {
		return !order.Date.Before(before)
	}), lines).Return(int64(1), nil)

	_, err := suite.service.Place(suite.ctx, decimal.NewFromInt(10), time.Time{}, 7, 3, lines)
	assert.NoError(suite.T(), err)
}

func (suite *OrderServiceTestSuite) TestPlace_RepoFailureWrapped() {
	lines := []models.OrderLine{{MenuID: 10, Quantity: 1}}
	suite.orderRepo.On("Place", suite.ctx, mock.Anything, lines).
		Return(int64(0), errors.New("insufficient stock"))

	orderID, err := suite.service.Place(suite.ctx, decimal.NewFromInt(10), time.Now(), 7, 3, lines)
	assert.Zero(suite.T(), orderID)
	assert.ErrorIs(suite.T(), err, common.ErrPersistence)
}

func (suite *OrderServiceTestSuite) TestCancel_NotFound() {
	suite.orderRepo.On("Cancel", suite.ctx, int64(99)).Return(pgx.ErrNoRows)

	err := suite.service.Cancel(suite.ctx, 99)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestAddLineItem_ChecksOrderExists() {
	suite.orderRepo.On("GetByID", suite.ctx, int64(42)).Return(&models.Order{OrderID: 42}, nil)
	suite.orderRepo.On("UpsertLine", suite.ctx, int64(42), int64(10), 2).Return(nil)

	err := suite.service.AddLineItem(suite.ctx, 42, 10, 2)
	assert.NoError(suite.T(), err)
}

func (suite *OrderServiceTestSuite) TestAddLineItem_MissingOrder() {
	suite.orderRepo.On("GetByID", suite.ctx, int64(99)).Return(nil, pgx.ErrNoRows)

	err := suite.service.AddLineItem(suite.ctx, 99, 10, 2)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	suite.orderRepo.AssertNotCalled(suite.T(), "UpsertLine")
}

func (suite *OrderServiceTestSuite) TestAddLineItem_RejectsZeroQuantity() {
	err := suite.service.AddLineItem(suite.ctx, 42, 10, 0)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
	suite.orderRepo.AssertNotCalled(suite.T(), "GetByID")
}

func (suite *OrderServiceTestSuite) TestRemoveLineItem_NotFound() {
	suite.orderRepo.On("RemoveLine", suite.ctx, int64(42), int64(10)).Return(pgx.ErrNoRows)

	err := suite.service.RemoveLineItem(suite.ctx, 42, 10)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestListRecent_CapsAtFifty() {
	orders := []*models.Order{{OrderID: 1}, {OrderID: 2}}
	suite.orderRepo.On("ListRecent", suite.ctx, 50).Return(orders, nil)

	got, err := suite.service.ListRecent(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orders, got)
}

func (suite *OrderServiceTestSuite) TestMenuItemsByOrderID_ExpandsLines() {
	lines := []models.OrderLine{
		{OrderID: 42, MenuID: 10, Quantity: 2},
		{OrderID: 42, MenuID: 11, Quantity: 1},
	}
	burger := &models.MenuItem{MenuID: 10, Name: "Burger"}
	fries := &models.MenuItem{MenuID: 11, Name: "Fries"}
	suite.orderRepo.On("LinesByOrderID", suite.ctx, int64(42)).Return(lines, nil)
	suite.menuRepo.On("GetByID", suite.ctx, int64(10)).Return(burger, nil)
	suite.menuRepo.On("GetByID", suite.ctx, int64(11)).Return(fries, nil)

	items, err := suite.service.MenuItemsByOrderID(suite.ctx, 42)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), 2, items[0].Quantity)
	assert.Equal(suite.T(), burger, items[0].MenuItem)
	assert.Equal(suite.T(), fries, items[1].MenuItem)
}

func (suite *OrderServiceTestSuite) TestMenuItemsByOrderID_EmptyOrder() {
	suite.orderRepo.On("LinesByOrderID", suite.ctx, int64(42)).Return([]models.OrderLine{}, nil)

	items, err := suite.service.MenuItemsByOrderID(suite.ctx, 42)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), items)
}

func (suite *OrderServiceTestSuite) TestUpdatePrice_NotFound() {
	price := decimal.NewFromFloat(12.00)
	suite.orderRepo.On("UpdatePrice", suite.ctx, int64(99), price).Return(pgx.ErrNoRows)

	err := suite.service.UpdatePrice(suite.ctx, 99, price)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}
