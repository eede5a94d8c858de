package repository

import (
	"context"

	"github.com/omsai/pos-backend/internal/domain/entity"
)

// IdempotencyRepository defines the interface for request replay caching
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
}
