package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/cases"
)

const (
	weatherKeyPrefix = "weather:"

	// DefaultTTL is how long a reading stays cached when the config does not say
	DefaultTTL = 10 * time.Minute
)

// ErrWeatherNotFound is returned when no reading is cached for a city
var ErrWeatherNotFound = errors.New("weather not found")

// Config holds configuration for the Redis weather cache
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to saved readings
	TTL time.Duration
}

type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed weather cache
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// SaveWeather writes the reading as JSON with an expiry
func (r *redisRepository) SaveWeather(ctx context.Context, input *SaveWeatherInput) error {
	if input == nil || input.Weather == nil {
		return errors.New("input and weather cannot be nil")
	}

	key, err := r.key(input.Weather.City)
	if err != nil {
		return err
	}

	weatherJSON, err := json.Marshal(input.Weather)
	if err != nil {
		return fmt.Errorf("failed to marshal weather: %w", err)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, key, weatherJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save weather: %w", err)
	}

	return nil
}

// GetWeather reads the cached reading for a city
func (r *redisRepository) GetWeather(ctx context.Context, input *GetWeatherInput) (*models.Weather, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key, err := r.key(input.City)
	if err != nil {
		return nil, err
	}

	weatherJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrWeatherNotFound
		}
		return nil, fmt.Errorf("failed to get weather: %w", err)
	}

	var weather models.Weather
	if err := json.Unmarshal([]byte(weatherJSON), &weather); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather: %w", err)
	}

	return &weather, nil
}

// DeleteWeather removes the cached reading for a city
func (r *redisRepository) DeleteWeather(ctx context.Context, input *DeleteWeatherInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	key, err := r.key(input.City)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete weather: %w", err)
	}

	return nil
}

// key case-folds the city so "SEOUL" and "seoul" share an entry.
// A Caser is stateful, so each call builds its own.
func (r *redisRepository) key(city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", errors.New("city cannot be empty")
	}
	return weatherKeyPrefix + cases.Fold().String(city), nil
}
