// File: services/settings/interface.go
package settings

import (
	"context"

	"detailify/models"
)

// SettingsService manages the single business settings document.
type SettingsService interface {
	Get(ctx context.Context) (*models.BusinessSettings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (*models.BusinessSettings, error)
	Toggle(ctx context.Context, key string, on bool) (*models.BusinessSettings, error)
	RegisterOwnerDevice(ctx context.Context, fcmToken string) error
}

// Store persists the settings document. found=false means no document
// has ever been written, in which case the service serves defaults.
type Store interface {
	Load(ctx context.Context) (settings *models.BusinessSettings, found bool, err error)
	Save(ctx context.Context, settings models.BusinessSettings) error
}

// DefaultSettingsService is the production SettingsService.
type DefaultSettingsService struct {
	Store Store
	// DefaultLeadMinutes seeds ReminderLeadMinutes before the owner has
	// saved anything.
	DefaultLeadMinutes int
}

func NewDefaultSettingsService(store Store, defaultLeadMinutes int) *DefaultSettingsService {
	return &DefaultSettingsService{
		Store:              store,
		DefaultLeadMinutes: defaultLeadMinutes,
	}
}
