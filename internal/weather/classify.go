package weather

import "github.com/KirkDiggler/weatheryacht/internal/models"

// DefaultCode is assumed when the provider omits the weather code
const DefaultCode = 1

// Classify maps a WMO weather code onto one of the five gameplay buckets.
// Codes outside the table are treated as cloudy.
func Classify(code int) models.WeatherCondition {
	switch {
	case code == 0:
		return models.WeatherSunny
	case code >= 1 && code <= 3, code == 45, code == 48:
		return models.WeatherCloudy
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return models.WeatherRain
	case code >= 71 && code <= 77, code == 85, code == 86:
		return models.WeatherSnow
	case code >= 95 && code <= 99:
		return models.WeatherStorm
	}
	return models.WeatherCloudy
}
