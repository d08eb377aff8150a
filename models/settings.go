package models

import "time"

// BusinessSettings is the single settings/toggles document kept in Firestore.
type BusinessSettings struct {
	AutoPostEnabled     bool      `firestore:"autoPostEnabled" json:"autoPostEnabled"`
	PushEnabled         bool      `firestore:"pushEnabled" json:"pushEnabled"`
	WeatherAlerts       bool      `firestore:"weatherAlerts" json:"weatherAlerts"`
	ReminderLeadMinutes int       `firestore:"reminderLeadMinutes" json:"reminderLeadMinutes"`
	DepositCents        int64     `firestore:"depositCents" json:"depositCents"`
	OwnerFCMToken       string    `firestore:"ownerFcmToken" json:"ownerFcmToken,omitempty"`
	UpdatedAt           time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// SettingsPatch carries partial updates; nil fields are left untouched.
type SettingsPatch struct {
	AutoPostEnabled     *bool   `json:"autoPostEnabled,omitempty"`
	PushEnabled         *bool   `json:"pushEnabled,omitempty"`
	WeatherAlerts       *bool   `json:"weatherAlerts,omitempty"`
	ReminderLeadMinutes *int    `json:"reminderLeadMinutes,omitempty"`
	DepositCents        *int64  `json:"depositCents,omitempty"`
	OwnerFCMToken       *string `json:"ownerFcmToken,omitempty"`
}
