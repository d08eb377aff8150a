package routes

import (
	"net/http"
	"time"

	"detailify/handlers"
	"detailify/middleware"
	"detailify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers owner login/logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.OwnerAuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterScheduleRoutes registers the booking calendar endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.POST("/preview", hb.PreviewScheduleHandler)
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
		api.POST("/:id/complete", hb.CompleteBookingHandler)
	}
}

// RegisterMarketingRoutes registers the content studio endpoints.
func RegisterMarketingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/marketing")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.POST("/generate", hb.GenerateContentHandler)
		api.GET("/history", hb.ContentHistoryHandler)
		api.DELETE("/:id", hb.DeleteContentHandler)
		api.POST("/transcribe", hb.TranscribeBriefHandler)
	}
}

// RegisterDriveRoutes registers the file manager endpoints. Deletes are
// additionally gated on the admin key since they are irreversible.
func RegisterDriveRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drive")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.GET("", hb.DriveListHandler)
		api.GET("/:id/download", hb.DriveDownloadHandler)
		api.POST("/:id/move", hb.DriveMoveHandler)
		api.PATCH("/:id/rename", hb.DriveRenameHandler)
		api.DELETE("/:id", middleware.AdminKeyMiddleware(), hb.DriveDeleteHandler)
	}
}

// RegisterSettingsRoutes registers the business settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.GET("", hb.GetSettingsHandler)
		api.PATCH("", hb.UpdateSettingsHandler)
		api.POST("/toggle/:key", hb.ToggleSettingHandler)
		api.POST("/device", hb.RegisterDeviceHandler)
	}
}

// RegisterWeatherRoutes registers the shop outlook endpoints.
func RegisterWeatherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/weather")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.GET("/today", hb.WeatherTodayHandler)
		api.GET("/forecast", hb.WeatherForecastHandler)
	}
}

// RegisterMediaRoutes registers the job photo endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.POST("/upload", hb.UploadJobPhotoHandler)
		api.GET("/url", hb.JobPhotoURLHandler)
		api.DELETE("", hb.DeleteJobPhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Detailify",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterMarketingRoutes(r, hb)
	RegisterDriveRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
}
