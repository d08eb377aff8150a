package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"detailify/models"
	"detailify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Fallback reminder lead when no settings source is wired.
const defaultReminderLeadMinutes = 120

// Preview resolves a civil date/time without persisting anything, so the
// dashboard can show the exact instant a slot lands on before committing.
func (s *DefaultSchedulingService) Preview(date, civilTime string) (*models.SchedulePreview, error) {
	scheduledISO, err := s.Converter.ComposeScheduled(date, civilTime, s.Zone)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := ParseInstant(scheduledISO)
	if err != nil {
		return nil, err
	}
	return &models.SchedulePreview{
		Date:        date,
		Time:        civilTime,
		Zone:        s.Zone,
		ScheduledAt: scheduledISO,
		Display:     s.Converter.DisplayTime(scheduledAt, s.Zone),
		Due:         s.Converter.IsDue(scheduledAt, s.Clock.Now()),
	}, nil
}

// CreateBooking resolves the requested wall-clock slot to an instant,
// rejects slots already in the past, persists the booking, and wires the
// reminder and optional deposit around it.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.CustomerName == "" || req.Vehicle == "" || req.Package == "" {
		return nil, NewSchedulingError("customerName, vehicle and package are required")
	}

	scheduledISO, err := s.Converter.ComposeScheduled(req.Date, req.Time, s.Zone)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := ParseInstant(scheduledISO)
	if err != nil {
		return nil, err
	}
	if s.Converter.IsDue(scheduledAt, s.Clock.Now()) {
		return nil, NewSchedulingError("requested slot is in the past")
	}

	booking := models.Booking{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Vehicle:      req.Vehicle,
		Package:      req.Package,
		Addons:       req.Addons,
		Notes:        req.Notes,
		ScheduledAt:  scheduledISO,
		Status:       models.BookingStatusConfirmed,
	}

	settings := s.currentSettings(ctx)

	if req.Deposit && s.Deposits != nil && settings.DepositCents > 0 {
		depositID, err := s.Deposits.CollectDeposit(ctx, booking, settings.DepositCents)
		if err != nil {
			return nil, fmt.Errorf("collect deposit: %w", err)
		}
		booking.DepositID = depositID
	}

	id, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.ID = id

	if s.Reminders != nil {
		lead := time.Duration(settings.ReminderLeadMinutes) * time.Minute
		fireAt := scheduledAt.Add(-lead)
		if fireAt.After(s.Clock.Now()) {
			reminderID, err := s.Reminders.ScheduleReminder(ctx, booking, fireAt)
			if err != nil {
				logger.Warn("Failed to schedule booking reminder",
					zap.String("bookingId", booking.ID), zap.Error(err))
			} else {
				booking.ReminderID = reminderID
				if err := s.Repo.SetReminderID(ctx, booking.ID, reminderID); err != nil {
					logger.Warn("Failed to persist reminder id",
						zap.String("bookingId", booking.ID), zap.Error(err))
				}
			}
		}
	}

	s.decorate(&booking)
	return &booking, nil
}

// GetBooking fetches one booking with its wall-clock rendering attached.
func (s *DefaultSchedulingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	s.decorate(booking)
	return booking, nil
}

// ListBookings returns bookings ordered by scheduled instant. status=""
// means all statuses; includePast=false drops slots already due.
func (s *DefaultSchedulingService) ListBookings(ctx context.Context, status string, includePast bool) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	now := s.Clock.Now()
	out := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if !includePast {
			scheduledAt, err := ParseInstant(bookings[i].ScheduledAt)
			if err == nil && s.Converter.IsDue(scheduledAt, now) {
				continue
			}
		}
		s.decorate(&bookings[i])
		out = append(out, bookings[i])
	}
	return out, nil
}

// CancelBooking marks the booking cancelled, drops its pending reminder,
// and releases any held deposit. Reminder and deposit failures are logged
// but do not undo the cancellation.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, NewSchedulingError("booking is already cancelled")
	}

	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled

	if s.Reminders != nil && booking.ReminderID != "" {
		if err := s.Reminders.CancelReminder(ctx, booking.ReminderID); err != nil {
			logger.Warn("Failed to cancel booking reminder",
				zap.String("bookingId", id), zap.Error(err))
		}
	}
	if s.Deposits != nil && booking.DepositID != "" {
		if err := s.Deposits.ReleaseDeposit(ctx, booking.DepositID); err != nil {
			logger.Warn("Failed to release booking deposit",
				zap.String("bookingId", id), zap.Error(err))
		}
	}
	return booking, nil
}

// CompleteBooking marks a confirmed booking completed.
func (s *DefaultSchedulingService) CompleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, NewSchedulingError("only confirmed bookings can be completed")
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCompleted); err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}
	booking.Status = models.BookingStatusCompleted
	return booking, nil
}

func (s *DefaultSchedulingService) decorate(b *models.Booking) {
	b.ScheduledFor = s.Converter.DisplayInstant(b.ScheduledAt, s.Zone)
}

func (s *DefaultSchedulingService) currentSettings(ctx context.Context) models.BusinessSettings {
	if s.Settings != nil {
		if settings, err := s.Settings.Current(ctx); err == nil && settings != nil {
			return *settings
		}
	}
	return models.BusinessSettings{ReminderLeadMinutes: defaultReminderLeadMinutes}
}
