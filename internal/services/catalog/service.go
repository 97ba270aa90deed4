package catalog

import (
	"context"
	"time"

	"fnb-ordering/internal/cache"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

const (
	itemsCacheKey = "catalog:items"
	menusCacheKey = "catalog:menus"
	cacheTTL      = 30 * time.Second
)

// Store is the persistence surface the catalog service needs.
type Store interface {
	CreateItem(ctx context.Context, item *models.Item) error
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateMenu(ctx context.Context, menu *models.Menu) error
	ListMenus(ctx context.Context) ([]models.Menu, error)
	UpdateMenu(ctx context.Context, menu *models.Menu) error
	DeleteMenu(ctx context.Context, menuID int64) error
}

// Service implements catalog operations with a read-through cache on the
// listings. Every write invalidates both cache keys: menus embed item data,
// so an item write can change a menu listing too.
type Service struct {
	store  Store
	cache  *cache.Cache
	logger *logger.Logger
}

// NewService creates the catalog service. cache may be nil to disable caching.
func NewService(store Store, c *cache.Cache, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		cache:  c,
		logger: log,
	}
}

// CreateItem validates and persists a new item.
func (s *Service) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	if err := validateItemRequest(req); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return item, nil
}

// ListItems returns all items, served from cache when possible.
func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	var cached []models.Item
	if s.cache.Get(ctx, itemsCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, itemsCacheKey, items, cacheTTL); err != nil {
		s.logger.Error("cache_set_failed", "Failed to cache item listing", "", err, nil)
	}
	return items, nil
}

// CreateMenu validates and persists a menu with its composition.
func (s *Service) CreateMenu(ctx context.Context, req *models.MenuRequest) (*models.Menu, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	menu := menuFromRequest(req)
	if err := s.store.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return menu, nil
}

// ListMenus returns all menus with composition, served from cache when possible.
func (s *Service) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var cached []models.Menu
	if s.cache.Get(ctx, menusCacheKey, &cached) {
		return cached, nil
	}

	menus, err := s.store.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, menusCacheKey, menus, cacheTTL); err != nil {
		s.logger.Error("cache_set_failed", "Failed to cache menu listing", "", err, nil)
	}
	return menus, nil
}

// UpdateMenu validates and replaces a menu and its whole composition.
func (s *Service) UpdateMenu(ctx context.Context, menuID int64, req *models.MenuRequest) (*models.Menu, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	menu := menuFromRequest(req)
	menu.ID = menuID
	if err := s.store.UpdateMenu(ctx, menu); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return menu, nil
}

// DeleteMenu removes a menu and every reference to it.
func (s *Service) DeleteMenu(ctx context.Context, menuID int64) error {
	if err := s.store.DeleteMenu(ctx, menuID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, itemsCacheKey, menusCacheKey); err != nil {
		s.logger.Error("cache_invalidate_failed", "Failed to invalidate catalog cache", "", err, nil)
	}
}

func menuFromRequest(req *models.MenuRequest) *models.Menu {
	return &models.Menu{
		Name:         req.Name,
		IsVegetarian: req.IsVegetarian,
		Price:        req.Price,
		Items:        req.Items,
	}
}

func validateItemRequest(req *models.CreateItemRequest) error {
	if req.Name == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Type == "" {
		return models.ValidationError{Field: "type", Message: "type is required"}
	}
	if req.Price < 0 {
		return models.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}

func validateMenuRequest(req *models.MenuRequest) error {
	if req.Name == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Price < 0 {
		return models.ValidationError{Field: "price", Message: "price must not be negative"}
	}

	seen := make(map[int64]bool, len(req.Items))
	for _, comp := range req.Items {
		if comp.ItemID <= 0 {
			return models.ValidationError{
				Field:   "fnb_items",
				Message: "item reference is required",
			}
		}
		if comp.Quantity < 1 {
			return models.ValidationError{
				Field:   "fnb_items",
				Message: "item quantity must be at least 1",
			}
		}
		if seen[comp.ItemID] {
			return models.ValidationError{
				Field:   "fnb_items",
				Message: "duplicate item reference",
			}
		}
		seen[comp.ItemID] = true
	}
	return nil
}
