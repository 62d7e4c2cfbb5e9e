package service

import (
	"context"

	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
)

// SettingsService handles the pharmacy seller profile used on printed invoices
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves pharmacy settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.PharmacySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.PharmacySettings{
			StoreName: "MediStock Pharmacy",
			Terms:     "Goods once sold will not be taken back or exchanged.",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating pharmacy settings
type UpdateSettingsInput struct {
	StoreName    string
	AddressLine1 string
	AddressLine2 string
	Phone        string
	GSTIN        string
	DLNumbers    string
	Terms        string
}

// UpdateSettings updates the pharmacy settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.PharmacySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.AddressLine1 = input.AddressLine1
	settings.AddressLine2 = input.AddressLine2
	settings.Phone = input.Phone
	settings.GSTIN = input.GSTIN
	settings.DLNumbers = input.DLNumbers
	settings.Terms = input.Terms

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
