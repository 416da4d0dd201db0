package weather

import (
	"context"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_forecaster.go github.com/KirkDiggler/weatheryacht/internal/weather Forecaster
//go:generate mockgen -package=mocks -destination=mocks/mock_locator.go github.com/KirkDiggler/weatheryacht/internal/weather Locator

// Forecaster looks up coordinates and current conditions
type Forecaster interface {
	// Ping checks that the provider is reachable
	Ping(ctx context.Context) error

	// Geocode resolves a city name to coordinates
	Geocode(ctx context.Context, input *GeocodeInput) (*models.Location, error)

	// GetCurrent returns the current temperature and weather code at a coordinate
	GetCurrent(ctx context.Context, input *GetCurrentInput) (*GetCurrentOutput, error)
}

// Locator detects the caller's approximate location
type Locator interface {
	// Detect returns the city and coordinates of the caller
	Detect(ctx context.Context) (*models.Location, error)
}
