// File: detailify/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Schedule endpoints
	PreviewScheduleHandler gin.HandlerFunc
	CreateBookingHandler   gin.HandlerFunc
	ListBookingsHandler    gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc

	// Marketing endpoints
	GenerateContentHandler gin.HandlerFunc
	ContentHistoryHandler  gin.HandlerFunc
	DeleteContentHandler   gin.HandlerFunc
	TranscribeBriefHandler gin.HandlerFunc

	// Drive endpoints
	DriveListHandler     gin.HandlerFunc
	DriveDownloadHandler gin.HandlerFunc
	DriveDeleteHandler   gin.HandlerFunc
	DriveMoveHandler     gin.HandlerFunc
	DriveRenameHandler   gin.HandlerFunc

	// Settings endpoints
	GetSettingsHandler    gin.HandlerFunc
	UpdateSettingsHandler gin.HandlerFunc
	ToggleSettingHandler  gin.HandlerFunc
	RegisterDeviceHandler gin.HandlerFunc

	// Weather endpoints
	WeatherTodayHandler    gin.HandlerFunc
	WeatherForecastHandler gin.HandlerFunc

	// Media endpoints
	UploadJobPhotoHandler gin.HandlerFunc
	DeleteJobPhotoHandler gin.HandlerFunc
	JobPhotoURLHandler    gin.HandlerFunc
}
