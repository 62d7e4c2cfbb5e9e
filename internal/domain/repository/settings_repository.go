package repository

import (
	"context"

	"github.com/praveenkm/medistock-api/internal/domain/entity"
)

// SettingsRepository defines the interface for pharmacy settings data access.
// Settings are a single row; Get returns nil when none has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.PharmacySettings, error)
	Create(ctx context.Context, settings *entity.PharmacySettings) error
	Update(ctx context.Context, settings *entity.PharmacySettings) error
}
