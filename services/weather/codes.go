// File: services/weather/codes.go
package weather

// conditionFor maps a WMO weather code onto the label and icon the
// dashboard renders.
func conditionFor(code int) (label, icon string) {
	switch {
	case code == 0:
		return "Clear", "sun"
	case code <= 2:
		return "Partly cloudy", "partly-cloudy"
	case code == 3:
		return "Overcast", "cloud"
	case code == 45 || code == 48:
		return "Fog", "fog"
	case code >= 51 && code <= 57:
		return "Drizzle", "drizzle"
	case code >= 61 && code <= 67:
		return "Rain", "rain"
	case code >= 71 && code <= 77:
		return "Snow", "snow"
	case code >= 80 && code <= 82:
		return "Rain showers", "rain"
	case code == 85 || code == 86:
		return "Snow showers", "snow"
	case code >= 95:
		return "Thunderstorm", "storm"
	default:
		return "Unknown", "cloud"
	}
}
