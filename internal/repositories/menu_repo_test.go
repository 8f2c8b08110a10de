package repositories

import (
	"context"
	"errors"
	"testing"

	"restopos/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MenuRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    MenuRepository
	context context.Context
}

func (suite *MenuRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewMenuRepository(mock)
	suite.context = context.Background()
}

func (suite *MenuRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestMenuRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MenuRepoTestSuite))
}

func (suite *MenuRepoTestSuite) TestCreate_Success() {
	item := &models.MenuItem{
		Name:  "Burger",
		Price: decimal.NewFromFloat(5.99),
		Type:  "entree",
		Ingredients: []models.MenuIngredient{
			{InventoryID: 1, Quantity: 1},
			{InventoryID: 2, Quantity: 2},
		},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO menu \(name, price, type\)`).
		WithArgs(item.Name, item.Price, item.Type).
		WillReturnRows(pgxmock.NewRows([]string{"menu_id"}).AddRow(int64(10)))
	suite.mock.ExpectExec(`INSERT INTO inventory_to_menu \(inventory_id, menu_id, quantity\)`).
		WithArgs(int64(1), int64(10), 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO inventory_to_menu \(inventory_id, menu_id, quantity\)`).
		WithArgs(int64(2), int64(10), 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.Create(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), item.MenuID)
	assert.Equal(suite.T(), int64(10), item.Ingredients[0].MenuID)
}

// A composition insert failure aborts the whole create: the menu row from the
// first statement is rolled back with it.
func (suite *MenuRepoTestSuite) TestCreate_CompositionFailureRollsBack() {
	item := &models.MenuItem{
		Name:  "Burger",
		Price: decimal.NewFromFloat(5.99),
		Type:  "entree",
		Ingredients: []models.MenuIngredient{
			{InventoryID: 1, Quantity: 1},
		},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO menu \(name, price, type\)`).
		WithArgs(item.Name, item.Price, item.Type).
		WillReturnRows(pgxmock.NewRows([]string{"menu_id"}).AddRow(int64(10)))
	suite.mock.ExpectExec(`INSERT INTO inventory_to_menu \(inventory_id, menu_id, quantity\)`).
		WithArgs(int64(1), int64(10), 1).
		WillReturnError(errors.New("foreign key violation"))
	suite.mock.ExpectRollback()

	err := suite.repo.Create(suite.context, item)
	assert.Error(suite.T(), err)
}

func (suite *MenuRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM inventory_to_menu WHERE menu_id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	suite.mock.ExpectExec(`DELETE FROM menu_to_order WHERE menu_id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectExec(`DELETE FROM menu WHERE menu_id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.Delete(suite.context, 10)
	assert.NoError(suite.T(), err)
}

func (suite *MenuRepoTestSuite) TestDelete_MissingMenuRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM inventory_to_menu WHERE menu_id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	suite.mock.ExpectExec(`DELETE FROM menu_to_order WHERE menu_id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	suite.mock.ExpectExec(`DELETE FROM menu WHERE menu_id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.Delete(suite.context, 99)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *MenuRepoTestSuite) TestGetByID_IncludesComposition() {
	suite.mock.ExpectQuery(`SELECT menu_id, name, price, type FROM menu WHERE menu_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"menu_id", "name", "price", "type"}).
			AddRow(int64(10), "Burger", decimal.NewFromFloat(5.99), "entree"))
	suite.mock.ExpectQuery(`SELECT inventory_id, menu_id, quantity FROM inventory_to_menu WHERE menu_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"inventory_id", "menu_id", "quantity"}).
			AddRow(int64(1), int64(10), 1).
			AddRow(int64(2), int64(10), 2))

	item, err := suite.repo.GetByID(suite.context, 10)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Burger", item.Name)
	assert.Len(suite.T(), item.Ingredients, 2)
	assert.Equal(suite.T(), int64(2), item.Ingredients[1].InventoryID)
}

func (suite *MenuRepoTestSuite) TestGetByName_NotFound() {
	suite.mock.ExpectQuery(`SELECT menu_id, name, price, type FROM menu WHERE name = \$1`).
		WithArgs("Ghost Dish").
		WillReturnError(pgx.ErrNoRows)

	item, err := suite.repo.GetByName(suite.context, "Ghost Dish")
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), item)
}

func (suite *MenuRepoTestSuite) TestList_ShallowRows() {
	rows := pgxmock.NewRows([]string{"menu_id", "name", "price", "type"}).
		AddRow(int64(10), "Burger", decimal.NewFromFloat(5.99), "entree").
		AddRow(int64(11), "Fries", decimal.NewFromFloat(2.49), "side")

	suite.mock.ExpectQuery(`SELECT menu_id, name, price, type FROM menu ORDER BY menu_id`).
		WillReturnRows(rows)

	items, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Nil(suite.T(), items[0].Ingredients)
}

func (suite *MenuRepoTestSuite) TestListByType_FiltersAndExpands() {
	suite.mock.ExpectQuery(`SELECT menu_id, name, price, type FROM menu WHERE type = \$1 ORDER BY menu_id`).
		WithArgs("side").
		WillReturnRows(pgxmock.NewRows([]string{"menu_id", "name", "price", "type"}).
			AddRow(int64(11), "Fries", decimal.NewFromFloat(2.49), "side"))
	suite.mock.ExpectQuery(`SELECT inventory_id, menu_id, quantity FROM inventory_to_menu WHERE menu_id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"inventory_id", "menu_id", "quantity"}).
			AddRow(int64(4), int64(11), 1))

	items, err := suite.repo.ListByType(suite.context, "side")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Len(suite.T(), items[0].Ingredients, 1)
}

func (suite *MenuRepoTestSuite) TestUpdatePriceByID_NotFound() {
	price := decimal.NewFromFloat(6.49)

	suite.mock.ExpectExec(`UPDATE menu SET price = \$1 WHERE menu_id = \$2`).
		WithArgs(price, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdatePriceByID(suite.context, 99, price)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *MenuRepoTestSuite) TestUpdatePriceByName_Success() {
	price := decimal.NewFromFloat(6.49)

	suite.mock.ExpectExec(`UPDATE menu SET price = \$1 WHERE name = \$2`).
		WithArgs(price, "Burger").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdatePriceByName(suite.context, "Burger", price)
	assert.NoError(suite.T(), err)
}
