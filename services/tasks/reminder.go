package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"detailify/models"

	"github.com/hibiken/asynq"
)

// TypeSendReminder is the asynq task type for booking reminders.
const TypeSendReminder = "reminder:send"

// NewReminderTask builds the delayed task that carries a booking
// reminder to the worker, scheduled to process at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeSendReminder, b),
		[]asynq.Option{asynq.ProcessAt(fireAt)},
		nil
}
