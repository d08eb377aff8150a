package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"detailify/config"
	"detailify/models"
	"detailify/services/notification"
	"detailify/services/tasks"
	"detailify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	workerConcurrency  = 10
	workerMaxStarts    = 5
	redisProbeInterval = 10 * time.Second
)

// InitReminderWorker starts the asynq consumer that fires booking
// reminders at their scheduled time.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		},
		asynq.Config{
			Concurrency: workerConcurrency,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go monitorRedisConnection()
	go runWorker(srv, mux)
}

func runWorker(srv *asynq.Server, mux *asynq.ServeMux) {
	logger := utils.GetLogger()
	logger.Info("Starting reminder worker")

	for attempt := 1; ; attempt++ {
		err := srv.Run(mux)
		if err == nil {
			return
		}
		logger.Error("Reminder worker exited",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", workerMaxStarts),
			zap.Error(err),
		)
		if attempt >= workerMaxStarts {
			logger.Fatal("Reminder worker could not be started")
		}
		time.Sleep(time.Duration(attempt*2) * time.Second)
	}
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Reminder payload malformed", zap.Error(err))
			return err
		}

		logger.Info("Reminder due",
			zap.String("bookingId", p.BookingID), zap.String("display", p.Display))

		title := "Upcoming detail: " + p.CustomerName
		body := fmt.Sprintf("%s, %s at %s", p.Vehicle, p.Package, p.Display)
		data := map[string]string{
			"type":        "booking_reminder",
			"bookingId":   p.BookingID,
			"scheduledAt": p.ScheduledAt,
		}

		if err := notifSvc.NotifyOwner(ctx, title, body, data); err != nil {
			logger.Error("Reminder push failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection flags reminder-queue Redis outages at runtime.
// asynq reconnects on its own; this just makes the outage visible.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			utils.GetLogger().Warn("Reminder queue Redis unreachable", zap.Error(err))
		}
		time.Sleep(redisProbeInterval)
	}
}
