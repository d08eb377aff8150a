package notification

import (
	"context"
	"fmt"

	"detailify/models"
	"detailify/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService sends FCM pushes to the owner's device.
type NotificationService interface {
	NotifyOwner(ctx context.Context, title, body string, data map[string]string) error
}

// SettingsSource supplies the push toggle and the registered device token.
type SettingsSource interface {
	Current(ctx context.Context) (*models.BusinessSettings, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	settings SettingsSource
}

func NewDefaultNotificationService(settings SettingsSource) (*DefaultNotificationService, error) {
	if settings == nil {
		return nil, fmt.Errorf("notification service initialization error: settings source is nil")
	}
	return &DefaultNotificationService{settings: settings}, nil
}

// NotifyOwner pushes to the owner device registered in settings. A
// disabled push toggle drops the message silently; a missing device
// token is an error so callers can surface the misconfiguration.
func (s *DefaultNotificationService) NotifyOwner(ctx context.Context, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return fmt.Errorf("NotifyOwner: could not load settings: %w", err)
	}
	if !settings.PushEnabled {
		logger.Debug("Push disabled, dropping owner notification", zap.String("title", title))
		return nil
	}
	if settings.OwnerFCMToken == "" {
		return fmt.Errorf("NotifyOwner: no owner device token registered")
	}

	msg := &messaging.Message{
		Token: settings.OwnerFCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("NotifyOwner: failed to send FCM message: %w", err)
	}

	logger.Debug("Owner notification sent", zap.String("response", response))
	return nil
}
