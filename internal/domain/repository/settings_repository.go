package repository

import (
	"context"

	"github.com/omsai/pos-backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the restaurant profile
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}
