package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Scheduling. The business operates in a single civil zone; every
	// wall-clock input is interpreted there.
	BusinessTimezone    string `mapstructure:"BUSINESS_TIMEZONE"`
	BusinessZoneAbbr    string `mapstructure:"BUSINESS_ZONE_ABBR"`
	ReminderLeadMinutes int    `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Owner dashboard credentials (password stored as a bcrypt hash).
	OwnerEmail        string `mapstructure:"OWNER_EMAIL"`
	OwnerPasswordHash string `mapstructure:"OWNER_PASSWORD_HASH"`
	AdminAPIKey       string `mapstructure:"ADMIN_API_KEY"`

	// Gemini (hosted inference) API key.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Google service account + OAuth client used for Drive access.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	GoogleOAuthClientID      string `mapstructure:"GOOGLE_OAUTH_CLIENT_ID"`
	GoogleOAuthClientSecret  string `mapstructure:"GOOGLE_OAUTH_CLIENT_SECRET"`
	GoogleOAuthRefreshToken  string `mapstructure:"GOOGLE_OAUTH_REFRESH_TOKEN"`
	DriveRootFolderID        string `mapstructure:"DRIVE_ROOT_FOLDER_ID"`

	// Weather API (shop coordinates).
	WeatherAPIKey string  `mapstructure:"WEATHER_API_KEY"`
	ShopLatitude  float64 `mapstructure:"SHOP_LATITUDE"`
	ShopLongitude float64 `mapstructure:"SHOP_LONGITUDE"`

	// Stripe key for booking deposits.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Cloudinary credentials for job photo uploads.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Business profile fed into marketing prompts.
	BusinessName string `mapstructure:"BUSINESS_NAME"`
	BusinessCity string `mapstructure:"BUSINESS_CITY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Chicago")
	viper.SetDefault("BUSINESS_ZONE_ABBR", "CST")
	viper.SetDefault("REMINDER_LEAD_MINUTES", 120)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "serviceAccountKey.json")
	viper.SetDefault("SHOP_LATITUDE", 41.8781)
	viper.SetDefault("SHOP_LONGITUDE", -87.6298)
	viper.SetDefault("BUSINESS_NAME", "Detailify Auto Spa")
	viper.SetDefault("BUSINESS_CITY", "Chicago")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
