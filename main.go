// File: detailify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"detailify/config"
	"detailify/cron"
	"detailify/database"
	"detailify/database/repository"
	"detailify/handlers"
	"detailify/middleware"
	"detailify/routes"
	"detailify/services/drive"
	"detailify/services/marketing"
	"detailify/services/media"
	"detailify/services/notification"
	"detailify/services/payment"
	"detailify/services/schedule"
	"detailify/services/settings"
	"detailify/services/tasks"
	"detailify/services/weather"
	"detailify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := repository.NewMongoBookingRepo()
	contents := repository.NewMongoContentRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Scheduling core: zone database + civil time converter for the
	// business timezone.
	zdb := schedule.NewLocationZoneDB()
	converter := schedule.NewConverter(zdb, config.AppConfig.BusinessZoneAbbr)
	businessLoc, err := zdb.Location(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: unknown business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	// services.
	settingsService := settings.NewDefaultSettingsService(
		settings.NewFirestoreStore(utils.FirestoreClient),
		config.AppConfig.ReminderLeadMinutes,
	)

	notificationService, err := notification.NewDefaultNotificationService(settingsService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderQueue := tasks.NewReminderQueue()
	defer reminderQueue.Close()

	schedulingService := &schedule.DefaultSchedulingService{
		Repo:      bookings,
		Converter: converter,
		Zone:      config.AppConfig.BusinessTimezone,
		Clock:     schedule.NewSystemClock(),
		Reminders: reminderQueue,
		Deposits:  payment.NewStripePaymentService(),
		Settings:  settingsService,
	}

	weatherService := weather.NewDefaultWeatherService(
		weather.NewClient(
			config.AppConfig.ShopLatitude,
			config.AppConfig.ShopLongitude,
			config.AppConfig.BusinessTimezone,
			config.AppConfig.WeatherAPIKey,
		),
		utils.GetCacheClient(),
	)

	gemini := marketing.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	contentCache := marketing.NewRedisContentCache(utils.GetCacheClient(), 24*time.Hour)
	marketingService := marketing.NewDefaultMarketingService(gemini, contentCache, contents, config.AppConfig.GeminiModel)

	driveClient, err := drive.NewDriveClient(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize drive client: %v", err)
	}
	driveService := drive.NewDefaultDriveService(drive.NewGoogleFiles(driveClient), config.AppConfig.DriveRootFolderID)

	mediaService, err := media.NewCloudinaryMediaService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media service: %v", err)
	}

	// background workers.
	cron.InitReminderWorker(notificationService)
	brief := cron.StartDailyBrief(businessLoc, schedulingService, weatherService, notificationService, settingsService)
	defer brief.Stop()

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// handlers.
	scheduleHandler := handlers.NewScheduleHandler(schedulingService)
	marketingHandler := handlers.NewMarketingHandler(marketingService)
	driveHandler := handlers.NewDriveHandler(driveService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler:  handlers.LoginHandler,
		LogoutHandler: handlers.LogoutHandler,

		// Schedule endpoints.
		PreviewScheduleHandler: scheduleHandler.PreviewHandler,
		CreateBookingHandler:   scheduleHandler.CreateBookingHandler,
		ListBookingsHandler:    scheduleHandler.ListBookingsHandler,
		GetBookingHandler:      scheduleHandler.GetBookingHandler,
		CancelBookingHandler:   scheduleHandler.CancelBookingHandler,
		CompleteBookingHandler: scheduleHandler.CompleteBookingHandler,

		// Marketing endpoints.
		GenerateContentHandler: marketingHandler.GenerateHandler,
		ContentHistoryHandler:  marketingHandler.HistoryHandler,
		DeleteContentHandler:   marketingHandler.DeleteHandler,
		TranscribeBriefHandler: marketingHandler.TranscribeBriefHandler,

		// Drive endpoints.
		DriveListHandler:     driveHandler.ListHandler,
		DriveDownloadHandler: driveHandler.DownloadHandler,
		DriveDeleteHandler:   driveHandler.DeleteHandler,
		DriveMoveHandler:     driveHandler.MoveHandler,
		DriveRenameHandler:   driveHandler.RenameHandler,

		// Settings endpoints.
		GetSettingsHandler:    settingsHandler.GetHandler,
		UpdateSettingsHandler: settingsHandler.UpdateHandler,
		ToggleSettingHandler:  settingsHandler.ToggleHandler,
		RegisterDeviceHandler: settingsHandler.RegisterDeviceHandler,

		// Weather endpoints.
		WeatherTodayHandler:    weatherHandler.TodayHandler,
		WeatherForecastHandler: weatherHandler.ForecastHandler,

		// Media endpoints.
		UploadJobPhotoHandler: mediaHandler.UploadHandler,
		DeleteJobPhotoHandler: mediaHandler.DeleteHandler,
		JobPhotoURLHandler:    mediaHandler.URLHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
