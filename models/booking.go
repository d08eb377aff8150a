package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed detailing appointment. Only the absolute
// instant is persisted; the wall-clock rendering is recomputed from it on
// every read so a timezone-rule change can never strand a stale projection.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	CustomerName string    `bson:"customer_name" json:"customerName"`
	Phone        string    `bson:"phone" json:"phone"`
	Vehicle      string    `bson:"vehicle" json:"vehicle"`
	Package      string    `bson:"package" json:"package"`
	Addons       []string  `bson:"addons,omitempty" json:"addons,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ScheduledAt  string    `bson:"scheduled_at" json:"scheduledAt"` // UTC ISO-8601
	ScheduledFor string    `bson:"-" json:"scheduledFor,omitempty"` // derived local display, never stored
	Status       string    `bson:"status" json:"status"`
	DepositID    string    `bson:"deposit_id,omitempty" json:"depositId,omitempty"`
	ReminderID   string    `bson:"reminder_id,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the payload for creating an appointment. Date and time
// are civil wall-clock values in the business timezone.
type BookingRequest struct {
	CustomerName string   `json:"customerName" binding:"required"`
	Phone        string   `json:"phone"`
	Vehicle      string   `json:"vehicle" binding:"required"`
	Package      string   `json:"package" binding:"required"`
	Addons       []string `json:"addons,omitempty"`
	Date         string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string   `json:"time" binding:"required"` // HH:MM
	Notes        string   `json:"notes,omitempty"`
	Deposit      bool     `json:"deposit,omitempty"`
}

// SchedulePreview echoes a civil input back with its resolved instant, so the
// dashboard can show exactly when a slot lands before committing it.
type SchedulePreview struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Zone        string `json:"zone"`
	ScheduledAt string `json:"scheduledAt"` // UTC ISO-8601
	Display     string `json:"display"`
	Due         bool   `json:"due"` // already in the past
}
