package repository

import (
	"context"

	"github.com/omsai/pos-backend/internal/domain/entity"
)

// UserRepository defines the interface for staff account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
