// File: services/settings/service.go
package settings

import (
	"context"
	"fmt"
	"time"

	"detailify/models"
)

// Toggle keys accepted by Toggle.
const (
	KeyAutoPost      = "autoPost"
	KeyPush          = "push"
	KeyWeatherAlerts = "weatherAlerts"
)

// Get returns the current settings, or sensible defaults when nothing
// has been saved yet.
func (s *DefaultSettingsService) Get(ctx context.Context) (*models.BusinessSettings, error) {
	settings, found, err := s.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return s.defaults(), nil
	}
	return settings, nil
}

// Update merges non-nil patch fields into the stored document and stamps
// UpdatedAt.
func (s *DefaultSettingsService) Update(ctx context.Context, patch models.SettingsPatch) (*models.BusinessSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.AutoPostEnabled != nil {
		settings.AutoPostEnabled = *patch.AutoPostEnabled
	}
	if patch.PushEnabled != nil {
		settings.PushEnabled = *patch.PushEnabled
	}
	if patch.WeatherAlerts != nil {
		settings.WeatherAlerts = *patch.WeatherAlerts
	}
	if patch.ReminderLeadMinutes != nil {
		if *patch.ReminderLeadMinutes < 0 {
			return nil, fmt.Errorf("reminderLeadMinutes must not be negative")
		}
		settings.ReminderLeadMinutes = *patch.ReminderLeadMinutes
	}
	if patch.DepositCents != nil {
		if *patch.DepositCents < 0 {
			return nil, fmt.Errorf("depositCents must not be negative")
		}
		settings.DepositCents = *patch.DepositCents
	}
	if patch.OwnerFCMToken != nil {
		settings.OwnerFCMToken = *patch.OwnerFCMToken
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.Store.Save(ctx, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Toggle flips one boolean flag by key.
func (s *DefaultSettingsService) Toggle(ctx context.Context, key string, on bool) (*models.BusinessSettings, error) {
	patch := models.SettingsPatch{}
	switch key {
	case KeyAutoPost:
		patch.AutoPostEnabled = &on
	case KeyPush:
		patch.PushEnabled = &on
	case KeyWeatherAlerts:
		patch.WeatherAlerts = &on
	default:
		return nil, fmt.Errorf("unknown settings toggle %q", key)
	}
	return s.Update(ctx, patch)
}

// RegisterOwnerDevice stores the owner's FCM device token for pushes.
func (s *DefaultSettingsService) RegisterOwnerDevice(ctx context.Context, fcmToken string) error {
	if fcmToken == "" {
		return fmt.Errorf("fcmToken is required")
	}
	_, err := s.Update(ctx, models.SettingsPatch{OwnerFCMToken: &fcmToken})
	return err
}

// Current satisfies the scheduling service's settings source.
func (s *DefaultSettingsService) Current(ctx context.Context) (*models.BusinessSettings, error) {
	return s.Get(ctx)
}

func (s *DefaultSettingsService) defaults() *models.BusinessSettings {
	lead := s.DefaultLeadMinutes
	if lead <= 0 {
		lead = 120
	}
	return &models.BusinessSettings{
		AutoPostEnabled:     false,
		PushEnabled:         true,
		WeatherAlerts:       true,
		ReminderLeadMinutes: lead,
		DepositCents:        0,
	}
}
