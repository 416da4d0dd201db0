package weather

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/weatheryacht/internal/repositories/weather Repository

import (
	"context"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

// Repository caches resolved weather readings per city
type Repository interface {
	// SaveWeather stores a reading under its city until the TTL elapses
	SaveWeather(ctx context.Context, input *SaveWeatherInput) error

	// GetWeather returns the cached reading for a city, or ErrWeatherNotFound
	GetWeather(ctx context.Context, input *GetWeatherInput) (*models.Weather, error)

	// DeleteWeather drops the cached reading for a city
	DeleteWeather(ctx context.Context, input *DeleteWeatherInput) error
}
