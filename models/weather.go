package models

import "time"

// WeatherSnapshot is one day's outlook at the shop, current conditions
// included when the day is today.
type WeatherSnapshot struct {
	Date         string    `json:"date"` // YYYY-MM-DD in the business zone
	Condition    string    `json:"condition"`
	Icon         string    `json:"icon"`
	TempF        float64   `json:"tempF,omitempty"` // current, today only
	HighF        float64   `json:"highF"`
	LowF         float64   `json:"lowF"`
	PrecipChance int       `json:"precipChance"` // percent
	WindMph      float64   `json:"windMph,omitempty"`
	RainLikely   bool      `json:"rainLikely"`
	FetchedAt    time.Time `json:"fetchedAt"`
}
