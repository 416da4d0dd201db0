package weather

import (
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

type SaveWeatherInput struct {
	Weather *models.Weather

	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

type GetWeatherInput struct {
	City string
}

type DeleteWeatherInput struct {
	City string
}
