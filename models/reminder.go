package models

// ReminderPayload is the asynq task body for a booking reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	Vehicle      string `json:"vehicle"`
	Package      string `json:"package"`
	ScheduledAt  string `json:"scheduledAt"` // instant, ISO-8601 UTC
	Display      string `json:"display"`     // local wall-clock rendering
}
