// File: services/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// forecastResponse mirrors the Open-Meteo forecast payload, limited to
// the fields the dashboard uses.
type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipProbMax []int     `json:"precipitation_probability_max"`
		WeatherCode   []int     `json:"weathercode"`
	} `json:"daily"`
}

// Client fetches forecasts for a fixed coordinate. BaseURL is
// overridable for tests; APIKey is only set on the commercial tier.
type Client struct {
	BaseURL   string
	APIKey    string
	Latitude  float64
	Longitude float64
	Timezone  string
	HTTP      *http.Client
}

func NewClient(latitude, longitude float64, timezone, apiKey string) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		APIKey:    apiKey,
		Latitude:  latitude,
		Longitude: longitude,
		Timezone:  timezone,
		HTTP:      &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) fetch(ctx context.Context, days int) (*forecastResponse, error) {
	endpoint := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current_weather=true"+
			"&daily=temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode"+
			"&temperature_unit=fahrenheit&windspeed_unit=mph&forecast_days=%d&timezone=%s",
		c.BaseURL, c.Latitude, c.Longitude, days, url.QueryEscape(c.Timezone),
	)
	if c.APIKey != "" {
		endpoint += "&apikey=" + url.QueryEscape(c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("decoding forecast failed: %w", err)
	}
	return &forecast, nil
}
