package menu

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/types"
)

const (
	maxNameLen     = 120
	maxCategoryLen = 60
)

// Service exposes the menu editor operations.
type Service interface {
	List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters) ([]MenuItemDTO, error)
	Create(ctx context.Context, restaurantID uuid.UUID, input CreateItemInput) (*MenuItemDTO, error)
	Update(ctx context.Context, restaurantID, itemID uuid.UUID, input UpdateItemInput) (*MenuItemDTO, error)
	SetStock(ctx context.Context, restaurantID, itemID uuid.UUID, inStock bool) (*MenuItemDTO, error)
	Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error
	Categories(ctx context.Context, restaurantID uuid.UUID) ([]string, error)
}

type service struct {
	repo Repository
}

// NewService builds a menu service over the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters) ([]MenuItemDTO, error) {
	items, err := s.repo.List(ctx, restaurantID, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch menu")
	}
	out := make([]MenuItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, restaurantID uuid.UUID, input CreateItemInput) (*MenuItemDTO, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return nil, err
	}
	category, err := cleanCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	item := &models.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         name,
		Category:     category,
		Price:        types.MoneyFromFloat(input.Price),
		IsVeg:        input.IsVeg,
		InStock:      inStock,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to create menu item")
	}
	return FromModel(item), nil
}

func (s *service) Update(ctx context.Context, restaurantID, itemID uuid.UUID, input UpdateItemInput) (*MenuItemDTO, error) {
	item, err := s.load(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := cleanName(*input.Name)
		if err != nil {
			return nil, err
		}
		item.Name = name
	}
	if input.Category != nil {
		category, err := cleanCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		item.Category = category
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		item.Price = types.MoneyFromFloat(*input.Price)
	}
	if input.IsVeg != nil {
		item.IsVeg = *input.IsVeg
	}
	if input.InStock != nil {
		item.InStock = *input.InStock
	}

	return s.save(ctx, item)
}

// SetStock toggles availability. Stock is persisted like any other column.
func (s *service) SetStock(ctx context.Context, restaurantID, itemID uuid.UUID, inStock bool) (*MenuItemDTO, error) {
	item, err := s.load(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if item.InStock == inStock {
		return FromModel(item), nil
	}
	item.InStock = inStock
	return s.save(ctx, item)
}

func (s *service) Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, restaurantID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to delete menu item")
	}
	return nil
}

// Categories lists the restaurant's categories: the standard tabs first in
// their fixed order, then any custom ones alphabetically.
func (s *service) Categories(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	categories, err := s.repo.Categories(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch categories")
	}
	return SortCategories(categories), nil
}

// SortCategories dedupes and orders category names for display.
func SortCategories(categories []string) []string {
	rank := func(name string) int {
		if i := slices.Index(categoryOrder, name); i >= 0 {
			return i
		}
		return len(categoryOrder)
	}

	out := []string{}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return out
}

func (s *service) load(ctx context.Context, restaurantID, itemID uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, restaurantID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load menu item")
	}
	return item, nil
}

func (s *service) save(ctx context.Context, item *models.MenuItem) (*MenuItemDTO, error) {
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update menu item")
	}
	return FromModel(item), nil
}

func cleanName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if len(name) > maxNameLen {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is too long").
			WithDetails(map[string]any{"max": maxNameLen})
	}
	return name, nil
}

func cleanCategory(value string) (string, error) {
	category := strings.TrimSpace(value)
	if category == "" || strings.EqualFold(category, "all") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	if len(category) > maxCategoryLen {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "category is too long").
			WithDetails(map[string]any{"max": maxCategoryLen})
	}
	return category, nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return nil
}
