package weather

import (
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/common/clock"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	weatherRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/weather"
	"github.com/KirkDiggler/weatheryacht/internal/weather"
	"github.com/sirupsen/logrus"
)

// Config holds the dependencies of the weather service
type Config struct {
	// Forecaster talks to the forecast and geocoding APIs
	Forecaster weather.Forecaster

	// Locator detects a location from the public IP
	Locator weather.Locator

	// Cache is optional; without it every resolve goes to the network
	Cache weatherRepo.Repository

	// CacheTTL is passed to the cache on save, zero keeps the cache default
	CacheTTL time.Duration

	Clock  clock.Clock
	Logger logrus.FieldLogger
}

// ResolveWeatherInput contains parameters for resolving weather
type ResolveWeatherInput struct {
	// City is the name the players asked for
	City string

	// Detected is a previously detected location. Its coordinates are used
	// instead of geocoding when its city matches City ignoring case.
	Detected *models.Location

	// Refresh skips and replaces the cached reading
	Refresh bool
}

// ResolveWeatherOutput contains the resolved weather
type ResolveWeatherOutput struct {
	Weather *models.Weather

	// Cached is true when the reading came from the cache
	Cached bool
}

// DetectLocationInput contains parameters for detecting the location
type DetectLocationInput struct {
	// Silent swallows detection failures and returns an empty output,
	// used when detection runs without the user asking for it
	Silent bool
}

// DetectLocationOutput contains the detected location, nil when a silent detection failed
type DetectLocationOutput struct {
	Location *models.Location
}
