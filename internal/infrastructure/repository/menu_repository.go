package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	domainRepo "github.com/omsai/pos-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
