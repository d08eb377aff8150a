package schedule

import (
	"context"
	"time"

	bookingRepo "detailify/database/repository/booking"
	"detailify/models"
)

// SchedulingService manages detailing appointments: resolving civil
// date/time input in the business timezone to absolute instants, storing
// bookings, and driving reminders and deposits around them.
type SchedulingService interface {
	Preview(date, civilTime string) (*models.SchedulePreview, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, status string, includePast bool) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*models.Booking, error)
}

// ReminderScheduler enqueues and cancels owner reminders for a booking.
// Satisfied by the asynq-backed task queue.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking models.Booking, fireAt time.Time) (string, error)
	CancelReminder(ctx context.Context, reminderID string) error
}

// DepositHandler collects and releases booking deposits.
type DepositHandler interface {
	CollectDeposit(ctx context.Context, booking models.Booking, amountCents int64) (string, error)
	ReleaseDeposit(ctx context.Context, depositID string) error
}

// SettingsSource exposes the live business toggles the scheduler needs.
type SettingsSource interface {
	Current(ctx context.Context) (*models.BusinessSettings, error)
}

// DefaultSchedulingService is the production SchedulingService. Reminders,
// Deposits and Settings are optional; a nil field simply disables that
// side effect.
type DefaultSchedulingService struct {
	Repo      bookingRepo.BookingRepository
	Converter *Converter
	Zone      string
	Clock     Clock
	Reminders ReminderScheduler
	Deposits  DepositHandler
	Settings  SettingsSource
}
