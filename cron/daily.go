package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"detailify/models"
	"detailify/services/notification"
	"detailify/services/schedule"
	"detailify/services/weather"
	"detailify/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartDailyBrief schedules the 07:00 morning ops brief in the business
// zone and returns the running scheduler so main can stop it.
func StartDailyBrief(
	loc *time.Location,
	schedSvc schedule.SchedulingService,
	weatherSvc weather.WeatherService,
	notifSvc notification.NotificationService,
	settings notification.SettingsSource,
) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc("0 7 * * *", func() {
		sendDailyBrief(loc, schedSvc, weatherSvc, notifSvc, settings)
	})
	if err != nil {
		logger.Error("Failed to schedule morning brief", zap.Error(err))
		return c
	}
	c.Start()
	logger.Info("Morning brief scheduled for 07:00", zap.String("zone", loc.String()))
	return c
}

func sendDailyBrief(
	loc *time.Location,
	schedSvc schedule.SchedulingService,
	weatherSvc weather.WeatherService,
	notifSvc notification.NotificationService,
	settings notification.SettingsSource,
) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	upcoming, err := schedSvc.ListBookings(ctx, models.BookingStatusConfirmed, false)
	if err != nil {
		logger.Error("Morning brief could not list bookings", zap.Error(err))
		return
	}

	// The display string leads with the local MM/DD/YYYY date, which is
	// exactly the grouping key for "today".
	todayPrefix := time.Now().In(loc).Format("01/02/2006")
	var today []models.Booking
	for _, b := range upcoming {
		if strings.HasPrefix(b.ScheduledFor, todayPrefix) {
			today = append(today, b)
		}
	}

	title := fmt.Sprintf("Today: %d detail(s) on the books", len(today))
	var lines []string
	for i, b := range today {
		if i == 3 {
			lines = append(lines, fmt.Sprintf("and %d more", len(today)-3))
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s, %s)", b.ScheduledFor, b.CustomerName, b.Package))
	}
	if len(today) == 0 {
		lines = append(lines, "No bookings today.")
	}

	if s, err := settings.Current(ctx); err == nil && s.WeatherAlerts {
		if note := weatherSvc.Note(ctx); note != "" {
			lines = append(lines, "Weather: "+note)
		}
	}

	body := strings.Join(lines, "\n")
	if err := notifSvc.NotifyOwner(ctx, title, body, map[string]string{"type": "daily_brief"}); err != nil {
		logger.Error("Morning brief push failed", zap.Error(err))
	}
}
