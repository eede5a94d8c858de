package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
)

// MenuRepository defines the interface for menu catalog operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	List(ctx context.Context) ([]entity.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
