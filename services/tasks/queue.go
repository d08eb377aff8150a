package tasks

import (
	"context"
	"fmt"
	"time"

	"detailify/config"
	"detailify/models"

	"github.com/hibiken/asynq"
)

// ReminderQueue enqueues booking reminders for the async worker and can
// withdraw them when a booking is cancelled. Satisfies the scheduling
// service's ReminderScheduler.
type ReminderQueue struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewReminderQueue() *ReminderQueue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	return &ReminderQueue{
		client:    asynq.NewClient(redisOpt),
		inspector: asynq.NewInspector(redisOpt),
	}
}

// ScheduleReminder enqueues a reminder task to fire at fireAt and
// returns the task id for later cancellation.
func (q *ReminderQueue) ScheduleReminder(ctx context.Context, booking models.Booking, fireAt time.Time) (string, error) {
	payload := models.ReminderPayload{
		BookingID:    booking.ID,
		CustomerName: booking.CustomerName,
		Vehicle:      booking.Vehicle,
		Package:      booking.Package,
		ScheduledAt:  booking.ScheduledAt,
		Display:      booking.ScheduledFor,
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return "", fmt.Errorf("build reminder task: %w", err)
	}

	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", fmt.Errorf("enqueue reminder: %w", err)
	}
	return info.ID, nil
}

// CancelReminder removes a scheduled reminder task from the queue.
func (q *ReminderQueue) CancelReminder(ctx context.Context, reminderID string) error {
	if err := q.inspector.DeleteTask("default", reminderID); err != nil {
		return fmt.Errorf("cancel reminder %s: %w", reminderID, err)
	}
	return nil
}

// Close releases the underlying asynq connections.
func (q *ReminderQueue) Close() error {
	if err := q.client.Close(); err != nil {
		return err
	}
	return q.inspector.Close()
}
