// File: services/weather/service.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"detailify/models"
	"detailify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	weatherCachePrefix = "weather:day:"
	weatherCacheTTL    = 30 * time.Minute

	// rainLikelyThreshold is the precipitation chance, in percent, above
	// which the shop treats the day as a washout risk.
	rainLikelyThreshold = 50

	maxForecastDays = 7
)

// WeatherService provides the shop's local outlook.
type WeatherService interface {
	Today(ctx context.Context) (*models.WeatherSnapshot, error)
	Forecast(ctx context.Context, day int) (*models.WeatherSnapshot, error)
	Note(ctx context.Context) string
}

// DefaultWeatherService fetches from Open-Meteo and caches snapshots in
// Redis for 30 minutes. Cache is optional.
type DefaultWeatherService struct {
	Client *Client
	Cache  *redis.Client
}

func NewDefaultWeatherService(client *Client, cache *redis.Client) *DefaultWeatherService {
	return &DefaultWeatherService{Client: client, Cache: cache}
}

// Today returns the current conditions plus today's range.
func (s *DefaultWeatherService) Today(ctx context.Context) (*models.WeatherSnapshot, error) {
	return s.Forecast(ctx, 0)
}

// Forecast returns the outlook day days ahead (0 = today, max 6).
func (s *DefaultWeatherService) Forecast(ctx context.Context, day int) (*models.WeatherSnapshot, error) {
	logger := utils.GetLogger()

	if day < 0 || day >= maxForecastDays {
		return nil, fmt.Errorf("forecast day must be in [0,%d)", maxForecastDays)
	}

	cacheKey := fmt.Sprintf("%s%d", weatherCachePrefix, day)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var snap models.WeatherSnapshot
			if err := json.Unmarshal([]byte(data), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	forecast, err := s.Client.fetch(ctx, day+1)
	if err != nil {
		return nil, err
	}
	if len(forecast.Daily.Time) <= day {
		return nil, fmt.Errorf("forecast API returned %d days, wanted %d", len(forecast.Daily.Time), day+1)
	}

	label, icon := conditionFor(forecast.Daily.WeatherCode[day])
	snap := &models.WeatherSnapshot{
		Date:         forecast.Daily.Time[day],
		Condition:    label,
		Icon:         icon,
		HighF:        forecast.Daily.TempMax[day],
		LowF:         forecast.Daily.TempMin[day],
		PrecipChance: forecast.Daily.PrecipProbMax[day],
		RainLikely:   forecast.Daily.PrecipProbMax[day] >= rainLikelyThreshold,
		FetchedAt:    time.Now().UTC(),
	}
	if day == 0 {
		// Current conditions override the daily code for today.
		label, icon = conditionFor(forecast.CurrentWeather.WeatherCode)
		snap.Condition = label
		snap.Icon = icon
		snap.TempF = forecast.CurrentWeather.Temperature
		snap.WindMph = forecast.CurrentWeather.WindSpeed
	}

	if s.Cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, weatherCacheTTL).Err(); err != nil {
				logger.Warn("Weather cache store failed", zap.Error(err))
			}
		}
	}
	return snap, nil
}

// Note renders a one-line weather summary for caption prompts and the
// morning brief. Best effort: returns "" when the forecast is down.
func (s *DefaultWeatherService) Note(ctx context.Context) string {
	snap, err := s.Today(ctx)
	if err != nil {
		utils.GetLogger().Warn("Weather note unavailable", zap.Error(err))
		return ""
	}
	return fmt.Sprintf("%s, high %.0f°F, %d%% chance of rain",
		snap.Condition, snap.HighF, snap.PrecipChance)
}
