package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
	"gorm.io/gorm"
)

// MenuService handles the menu catalog
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// CreateItemInput represents the create menu item input. Price is in rupees.
type CreateItemInput struct {
	Name  string
	Price float64
}

// CreateItem adds a dish to the menu
func (s *MenuService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Item price cannot be negative")
	}

	item := &entity.MenuItem{
		Name:  input.Name,
		Price: toPaise(input.Price),
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all menu items
func (s *MenuService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// DeleteItem removes a dish from the menu. Historical bills keep their
// snapshot of its name and price.
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := s.menuRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Menu item")
	}
	return err
}
