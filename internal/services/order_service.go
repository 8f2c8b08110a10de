package services

import (
	"context"
	"log"
	"time"

	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"

	"github.com/shopspring/decimal"
)

const maxLineQuantity = 10000

// OrderService owns the order workflow: atomic placement with inventory
// decrement, cancellation, line-item edits, and order reads.
type OrderService interface {
	// Place creates an order with its line items and decrements the stock of
	// every ingredient consumed, all-or-nothing.
	Place(ctx context.Context, costTotal decimal.Decimal, date time.Time, customerID, staffID int64, lines []models.OrderLine) (int64, error)
	// Cancel removes the order and its lines. Stock consumed by the order is
	// deliberately not restored; see the workflow tests for the pinned
	// behavior.
	Cancel(ctx context.Context, orderID int64) error
	AddLineItem(ctx context.Context, orderID, menuID int64, quantity int) error
	RemoveLineItem(ctx context.Context, orderID, menuID int64) error
	UpdatePrice(ctx context.Context, orderID int64, costTotal decimal.Decimal) error
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Order, error)
	ListSince(ctx context.Context, date time.Time) ([]*models.Order, error)
	ListRecent(ctx context.Context) ([]*models.Order, error)
	MenuItemsByOrderID(ctx context.Context, orderID int64) ([]models.OrderedMenuItem, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

func (s *orderService) Place(ctx context.Context, costTotal decimal.Decimal, date time.Time, customerID, staffID int64, lines []models.OrderLine) (int64, error) {
	if len(lines) == 0 {
		return 0, common.Validationf("order must contain at least one line item")
	}
	if err := common.ValidatePrice(costTotal, "cost_total"); err != nil {
		return 0, common.Validationf("%v", err)
	}
	for _, line := range lines {
		if err := common.ValidatePositiveInteger(line.Quantity, "quantity", maxLineQuantity); err != nil {
			return 0, common.Validationf("menu item %d: %v", line.MenuID, err)
		}
	}
	if date.IsZero() {
		date = time.Now()
	}

	order := &models.Order{
		CostTotal:  costTotal,
		Date:       date,
		CustomerID: customerID,
		StaffID:    staffID,
	}
	orderID, err := s.orderRepo.Place(ctx, order, lines)
	if err != nil {
		return 0, common.Persistence("place order", err)
	}

	log.Printf("Order %d created successfully", orderID)
	return orderID, nil
}

func (s *orderService) Cancel(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.Cancel(ctx, orderID); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("order")
		}
		return common.Persistence("cancel order", err)
	}
	log.Printf("Order %d cancelled", orderID)
	return nil
}

func (s *orderService) AddLineItem(ctx context.Context, orderID, menuID int64, quantity int) error {
	if err := common.ValidatePositiveInteger(quantity, "quantity", maxLineQuantity); err != nil {
		return common.Validationf("%v", err)
	}
	// The order must exist; the upsert would otherwise fail on the foreign
	// key with a less useful error.
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("order")
		}
		return common.Persistence("get order", err)
	}
	if err := s.orderRepo.UpsertLine(ctx, orderID, menuID, quantity); err != nil {
		return common.Persistence("add line item", err)
	}
	return nil
}

func (s *orderService) RemoveLineItem(ctx context.Context, orderID, menuID int64) error {
	if err := s.orderRepo.RemoveLine(ctx, orderID, menuID); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("order line")
		}
		return common.Persistence("remove line item", err)
	}
	return nil
}

func (s *orderService) UpdatePrice(ctx context.Context, orderID int64, costTotal decimal.Decimal) error {
	if err := common.ValidatePrice(costTotal, "cost_total"); err != nil {
		return common.Validationf("%v", err)
	}
	if err := s.orderRepo.UpdatePrice(ctx, orderID, costTotal); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("order")
		}
		return common.Persistence("update order price", err)
	}
	return nil
}

func (s *orderService) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, common.NotFound("order")
		}
		return nil, common.Persistence("get order", err)
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, common.Persistence("list orders", err)
	}
	return orders, nil
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, common.Persistence("list orders by customer", err)
	}
	return orders, nil
}

func (s *orderService) ListByDate(ctx context.Context, date time.Time) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, common.Persistence("list orders by date", err)
	}
	return orders, nil
}

func (s *orderService) ListSince(ctx context.Context, date time.Time) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListSince(ctx, date)
	if err != nil {
		return nil, common.Persistence("list orders since date", err)
	}
	return orders, nil
}

// ListRecent returns the 50 newest orders by date.
func (s *orderService) ListRecent(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListRecent(ctx, 50)
	if err != nil {
		return nil, common.Persistence("list recent orders", err)
	}
	return orders, nil
}

// MenuItemsByOrderID expands an order's lines into quantity + menu item
// detail pairs.
func (s *orderService) MenuItemsByOrderID(ctx context.Context, orderID int64) ([]models.OrderedMenuItem, error) {
	lines, err := s.orderRepo.LinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, common.Persistence("get order lines", err)
	}

	items := make([]models.OrderedMenuItem, 0, len(lines))
	for _, line := range lines {
		menuItem, err := s.menuRepo.GetByID(ctx, line.MenuID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return nil, common.NotFound("menu item")
			}
			return nil, common.Persistence("resolve menu item", err)
		}
		items = append(items, models.OrderedMenuItem{
			Quantity: line.Quantity,
			MenuItem: menuItem,
		})
	}
	return items, nil
}
