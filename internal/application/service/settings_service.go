package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
)

// SettingsService handles the restaurant profile printed on receipts
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the restaurant profile
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	Name     string
	Tagline1 string
	Tagline2 string
	Footer   string
}

// UpdateSettings updates the restaurant profile
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Restaurant name is required")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{}
	}

	settings.Name = input.Name
	settings.Tagline1 = input.Tagline1
	settings.Tagline2 = input.Tagline2
	settings.Footer = input.Footer

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
