package weather

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/weatheryacht/internal/services/weather Service

import "context"

// Service resolves the live weather a game is themed on
type Service interface {
	// ResolveWeather returns the current weather for a city, from cache when fresh
	ResolveWeather(ctx context.Context, input *ResolveWeatherInput) (*ResolveWeatherOutput, error)

	// DetectLocation guesses the caller's city from their public IP
	DetectLocation(ctx context.Context, input *DetectLocationInput) (*DetectLocationOutput, error)
}
