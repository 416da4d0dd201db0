package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/common/clock"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	weatherRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/weather"
	"github.com/KirkDiggler/weatheryacht/internal/weather"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
)

type service struct {
	forecaster weather.Forecaster
	locator    weather.Locator
	cache      weatherRepo.Repository
	cacheTTL   time.Duration
	clock      clock.Clock
	log        logrus.FieldLogger

	// collapses concurrent resolves of the same city into one network round trip
	group singleflight.Group
}

// New creates a new weather service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Forecaster == nil {
		return nil, ErrNilForecaster
	}

	if cfg.Locator == nil {
		return nil, ErrNilLocator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	return &service{
		forecaster: cfg.Forecaster,
		locator:    cfg.Locator,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		clock:      cfg.Clock,
		log:        cfg.Logger.WithField("component", "weather"),
	}, nil
}

// ResolveWeather checks the cache, then the network: connectivity check,
// coordinates (detected or geocoded), current conditions
func (s *service) ResolveWeather(ctx context.Context, input *ResolveWeatherInput) (*ResolveWeatherOutput, error) {
	if input == nil {
		return nil, ErrEmptyCity
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, ErrEmptyCity
	}

	key := cases.Fold().String(city)
	if input.Refresh {
		key = "refresh:" + key
	}

	// The shared lookup must outlive any one caller; each caller still gives up on its own ctx
	results := s.group.DoChan(key, func() (interface{}, error) {
		return s.resolve(context.WithoutCancel(ctx), city, input.Detected, input.Refresh)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, ctx.Err())
	case result = <-results:
	}
	if result.Err != nil {
		return nil, result.Err
	}

	output := result.Val.(*ResolveWeatherOutput)
	resolved := output.Weather
	if result.Shared {
		// Callers own what they get back
		resolved = resolved.Clone()
	}
	// Cached and shared readings may carry another caller's spelling
	resolved.City = city

	return &ResolveWeatherOutput{
		Weather: resolved,
		Cached:  output.Cached,
	}, nil
}

func (s *service) resolve(ctx context.Context, city string, detected *models.Location, refresh bool) (*ResolveWeatherOutput, error) {
	log := s.log.WithField("city", city)

	// Drop the old reading first so a failed refetch does not bring it back
	if s.cache != nil && refresh {
		if err := s.cache.DeleteWeather(ctx, &weatherRepo.DeleteWeatherInput{City: city}); err != nil {
			log.WithError(err).Warn("weather cache delete failed")
		}
	}

	if s.cache != nil && !refresh {
		cached, err := s.cache.GetWeather(ctx, &weatherRepo.GetWeatherInput{City: city})
		switch {
		case err == nil:
			log.Debug("weather cache hit")
			return &ResolveWeatherOutput{Weather: cached, Cached: true}, nil
		case !errors.Is(err, weatherRepo.ErrWeatherNotFound):
			log.WithError(err).Warn("weather cache read failed")
		}
	}

	if err := s.forecaster.Ping(ctx); err != nil {
		log.WithError(err).Warn("weather API unreachable")
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	latitude, longitude, err := s.coordinates(ctx, city, detected)
	if err != nil {
		return nil, err
	}

	current, err := s.forecaster.GetCurrent(ctx, &weather.GetCurrentInput{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		log.WithError(err).Warn("failed to fetch current weather")
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	resolved := &models.Weather{
		City:          city,
		Temperature:   current.Temperature,
		ConditionCode: current.Code,
		Condition:     weather.Classify(current.Code),
		Latitude:      latitude,
		Longitude:     longitude,
		FetchedAt:     current.Time,
	}
	if resolved.FetchedAt.IsZero() {
		resolved.FetchedAt = s.clock.Now()
	}

	log.WithFields(logrus.Fields{
		"code":      resolved.ConditionCode,
		"condition": resolved.Condition,
	}).Info("resolved weather")

	if s.cache != nil {
		err := s.cache.SaveWeather(ctx, &weatherRepo.SaveWeatherInput{
			Weather: resolved,
			TTL:     s.cacheTTL,
		})
		if err != nil {
			log.WithError(err).Warn("weather cache write failed")
		}
	}

	return &ResolveWeatherOutput{Weather: resolved}, nil
}

// coordinates reuses the detected location when it names the same city
func (s *service) coordinates(ctx context.Context, city string, detected *models.Location) (float64, float64, error) {
	if detected != nil && cases.Fold().String(strings.TrimSpace(detected.City)) == cases.Fold().String(city) {
		return detected.Latitude, detected.Longitude, nil
	}

	location, err := s.forecaster.Geocode(ctx, &weather.GeocodeInput{City: city})
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return 0, 0, ErrCityNotFound
		}
		s.log.WithError(err).WithField("city", city).Warn("geocoding failed")
		return 0, 0, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	return location.Latitude, location.Longitude, nil
}

// DetectLocation asks the locator for the caller's city
func (s *service) DetectLocation(ctx context.Context, input *DetectLocationInput) (*DetectLocationOutput, error) {
	silent := input != nil && input.Silent

	location, err := s.locator.Detect(ctx)
	if err != nil {
		if silent {
			s.log.WithError(err).Debug("silent location detection failed")
			return &DetectLocationOutput{}, nil
		}
		s.log.WithError(err).Warn("location detection failed")
		return nil, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	}

	return &DetectLocationOutput{
		Location: location,
	}, nil
}
