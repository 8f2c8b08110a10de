package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"restopos/internal/caching"
	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"

	"github.com/shopspring/decimal"
)

const menuCacheTTL = 10 * time.Minute

// MenuService owns the menu catalog: detail and list reads, creation with
// composition resolution, cascading deletion, and price updates.
type MenuService interface {
	GetByID(ctx context.Context, menuID int64) (*models.MenuItem, error)
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	List(ctx context.Context) ([]*models.MenuItem, error)
	ListDetailed(ctx context.Context) ([]*models.MenuItem, error)
	ListByType(ctx context.Context, foodType string) ([]*models.MenuItem, error)
	Create(ctx context.Context, name string, price decimal.Decimal, foodType, compositionText string) (*models.MenuItem, error)
	Delete(ctx context.Context, menuID int64) error
	UpdatePriceByID(ctx context.Context, menuID int64, price decimal.Decimal) error
	UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error
}

type menuService struct {
	menuRepo      repositories.MenuRepository
	inventoryRepo repositories.InventoryRepository
	cacheService  caching.CacheService
}

func NewMenuService(menuRepo repositories.MenuRepository, inventoryRepo repositories.InventoryRepository, cacheService caching.CacheService) MenuService {
	return &menuService{
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		cacheService:  cacheService,
	}
}

func (s *menuService) GetByID(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	if cached, err := s.cacheService.GetMenuItem(ctx, menuID); err == nil {
		return cached, nil
	}

	item, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, common.NotFound("menu item")
		}
		return nil, common.Persistence("get menu item", err)
	}

	if err := s.cacheService.SetMenuItem(ctx, item, menuCacheTTL); err != nil {
		log.Printf("Failed to cache menu item %d: %v", menuID, err)
	}
	return item, nil
}

func (s *menuService) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByName(ctx, name)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, common.NotFound("menu item")
		}
		return nil, common.Persistence("get menu item by name", err)
	}
	return item, nil
}

func (s *menuService) List(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, common.Persistence("list menu items", err)
	}
	return items, nil
}

func (s *menuService) ListDetailed(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := s.menuRepo.ListDetailed(ctx)
	if err != nil {
		return nil, common.Persistence("list menu items with composition", err)
	}
	return items, nil
}

func (s *menuService) ListByType(ctx context.Context, foodType string) ([]*models.MenuItem, error) {
	items, err := s.menuRepo.ListByType(ctx, foodType)
	if err != nil {
		return nil, common.Persistence("list menu items by type", err)
	}
	return items, nil
}

// Create parses the composition text, resolves each ingredient name to an
// inventory id, and inserts the menu row with its composition atomically.
// An unresolvable name fails the whole operation before anything is written.
func (s *menuService) Create(ctx context.Context, name string, price decimal.Decimal, foodType, compositionText string) (*models.MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.Validationf("menu item name is required")
	}
	if err := common.ValidatePrice(price, "price"); err != nil {
		return nil, common.Validationf("%v", err)
	}

	ingredients, err := s.resolveComposition(ctx, compositionText)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:        name,
		Price:       price,
		Type:        foodType,
		Ingredients: ingredients,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		if isUniqueViolation(err) {
			return nil, common.Conflictf("menu item %q already exists", name)
		}
		return nil, common.Persistence("create menu item", err)
	}

	if err := s.cacheService.InvalidateMenu(ctx); err != nil {
		log.Printf("Failed to invalidate menu cache: %v", err)
	}
	log.Printf("Menu item %d (%s) created", item.MenuID, item.Name)
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, menuID int64) error {
	if err := s.menuRepo.Delete(ctx, menuID); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("menu item")
		}
		return common.Persistence("delete menu item", err)
	}
	if err := s.cacheService.InvalidateMenu(ctx); err != nil {
		log.Printf("Failed to invalidate menu cache: %v", err)
	}
	return nil
}

func (s *menuService) UpdatePriceByID(ctx context.Context, menuID int64, price decimal.Decimal) error {
	if err := common.ValidatePrice(price, "price"); err != nil {
		return common.Validationf("%v", err)
	}
	if err := s.menuRepo.UpdatePriceByID(ctx, menuID, price); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("menu item")
		}
		return common.Persistence("update menu price", err)
	}
	if err := s.cacheService.DeleteMenuItem(ctx, menuID); err != nil {
		log.Printf("Failed to evict menu item %d from cache: %v", menuID, err)
	}
	return nil
}

func (s *menuService) UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error {
	if err := common.ValidatePrice(price, "price"); err != nil {
		return common.Validationf("%v", err)
	}
	if err := s.menuRepo.UpdatePriceByName(ctx, name, price); err != nil {
		if repositories.IsNotFound(err) {
			return common.NotFound("menu item")
		}
		return common.Persistence("update menu price", err)
	}
	if err := s.cacheService.InvalidateMenu(ctx); err != nil {
		log.Printf("Failed to invalidate menu cache: %v", err)
	}
	return nil
}

// resolveComposition parses newline-separated "name | quantity" pairs and
// resolves each name through the inventory ledger.
func (s *menuService) resolveComposition(ctx context.Context, compositionText string) ([]models.MenuIngredient, error) {
	var ingredients []models.MenuIngredient

	for _, line := range strings.Split(compositionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			return nil, common.Validationf("malformed composition line %q, want \"name | quantity\"", line)
		}

		name := strings.TrimSpace(parts[0])
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || quantity <= 0 {
			return nil, common.Validationf("invalid quantity for ingredient %q", name)
		}

		invItem, err := s.inventoryRepo.GetByName(ctx, name)
		if err != nil {
			if repositories.IsNotFound(err) {
				return nil, common.Validationf("ingredient %q is not in inventory", name)
			}
			return nil, common.Persistence("resolve ingredient", err)
		}

		ingredients = append(ingredients, models.MenuIngredient{
			InventoryID: invItem.InventoryID,
			Quantity:    quantity,
		})
	}

	if len(ingredients) == 0 {
		return nil, common.Validationf("composition must list at least one ingredient")
	}
	return ingredients, nil
}
