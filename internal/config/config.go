package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis backs the weather cache; an empty address disables it
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`

	// Weather APIs
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	OpenMeteoURL     string        `env:"OPEN_METEO_URL" envDefault:"https://api.open-meteo.com"`
	GeocodingURL     string        `env:"GEOCODING_URL" envDefault:"https://geocoding-api.open-meteo.com"`
	IPGeolocationURL string        `env:"IP_GEOLOCATION_URL" envDefault:"http://ip-api.com/json/?fields=status,message,city,lat,lon"`

	// Game
	DefaultCity string `env:"DEFAULT_CITY" envDefault:"Seoul"`
	MaxPlayers  int    `env:"MAX_PLAYERS" envDefault:"4"`
	DiceSeed    int64  `env:"DICE_SEED"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment into a Config.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxPlayers < 1 {
		return nil, fmt.Errorf("MAX_PLAYERS must be positive, got %d", cfg.MaxPlayers)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Level returns the configured log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
