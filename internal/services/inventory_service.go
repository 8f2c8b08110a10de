package services

import (
	"context"
	"log"
	"strings"

	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"
)

// InventoryService owns the stock ledger: reads, restocks, and explicit
// adjustments. Order placement decrements stock through the order workflow,
// not through this service.
type InventoryService interface {
	Create(ctx context.Context, name string, initialQty int) (*models.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	GetByName(ctx context.Context, name string) (*models.InventoryItem, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
	SetQuantityByID(ctx context.Context, id int64, quantity int) error
	SetQuantityByName(ctx context.Context, name string, quantity int) error
	AddQuantity(ctx context.Context, id int64, delta int) error
	SubtractQuantity(ctx context.Context, id int64, delta int) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) Create(ctx context.Context, name string, initialQty int) (*models.InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.Validationf("inventory item name is required")
	}
	if initialQty < 0 {
		return nil, common.Validationf("initial quantity cannot be negative")
	}

	item, err := s.inventoryRepo.Create(ctx, name, initialQty)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.Conflictf("inventory item %q already exists", name)
		}
		return nil, common.Persistence("create inventory item", err)
	}
	log.Printf("Inventory item %d (%s) created with quantity %d", item.InventoryID, item.Name, item.Quantity)
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, common.NotFound("inventory item")
		}
		return nil, common.Persistence("get inventory item", err)
	}
	return item, nil
}

func (s *inventoryService) GetByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByName(ctx, name)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, common.NotFound("inventory item")
		}
		return nil, common.Persistence("get inventory item by name", err)
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, common.Persistence("list inventory items", err)
	}
	return items, nil
}

func (s *inventoryService) SetQuantityByID(ctx context.Context, id int64, quantity int) error {
	if err := s.inventoryRepo.SetQuantityByID(ctx, id, quantity); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("inventory item")
		}
		return common.Persistence("set inventory quantity", err)
	}
	return nil
}

func (s *inventoryService) SetQuantityByName(ctx context.Context, name string, quantity int) error {
	if err := s.inventoryRepo.SetQuantityByName(ctx, name, quantity); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("inventory item")
		}
		return common.Persistence("set inventory quantity", err)
	}
	return nil
}

func (s *inventoryService) AddQuantity(ctx context.Context, id int64, delta int) error {
	if delta <= 0 {
		return common.Validationf("restock delta must be positive")
	}
	if err := s.inventoryRepo.AddQuantity(ctx, id, delta); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("inventory item")
		}
		return common.Persistence("add inventory quantity", err)
	}
	return nil
}

// SubtractQuantity lowers stock without clamping at zero; the restock report
// surfaces whatever goes negative.
func (s *inventoryService) SubtractQuantity(ctx context.Context, id int64, delta int) error {
	if delta <= 0 {
		return common.Validationf("subtract delta must be positive")
	}
	if err := s.inventoryRepo.SubtractQuantity(ctx, id, delta); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("inventory item")
		}
		return common.Persistence("subtract inventory quantity", err)
	}
	return nil
}
