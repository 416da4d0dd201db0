package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/common/clock"
	"github.com/KirkDiggler/weatheryacht/internal/common/uuid"
	"github.com/KirkDiggler/weatheryacht/internal/config"
	"github.com/KirkDiggler/weatheryacht/internal/dice"
	"github.com/KirkDiggler/weatheryacht/internal/handlers/discord"
	gameRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/game"
	weatherRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/weather"
	gameService "github.com/KirkDiggler/weatheryacht/internal/services/game"
	"github.com/KirkDiggler/weatheryacht/internal/services/messaging"
	weatherService "github.com/KirkDiggler/weatheryacht/internal/services/weather"
	"github.com/KirkDiggler/weatheryacht/internal/weather"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	logger.SetLevel(cfg.Level())

	clk := clock.New()
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Weather cache is optional
	var cache weatherRepo.Repository
	if cfg.CacheEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		cache, err = weatherRepo.NewRedis(&weatherRepo.Config{
			RedisClient: redisClient,
			TTL:         cfg.CacheTTL,
		})
		if err != nil {
			logger.WithError(err).WithField("redis_addr", cfg.RedisAddr).Fatal("Failed to create weather cache")
		}
	} else {
		logger.Info("REDIS_ADDR not set, weather cache disabled")
	}

	forecaster, err := weather.NewOpenMeteo(&weather.OpenMeteoConfig{
		ForecastURL:  cfg.OpenMeteoURL,
		GeocodingURL: cfg.GeocodingURL,
		HTTPClient:   httpClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create forecast client")
	}

	locator, err := weather.NewIPAPI(&weather.IPAPIConfig{
		URL:        cfg.IPGeolocationURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create location client")
	}

	weatherSvc, err := weatherService.New(&weatherService.Config{
		Forecaster: forecaster,
		Locator:    locator,
		Cache:      cache,
		CacheTTL:   cfg.CacheTTL,
		Clock:      clk,
		Logger:     logger.WithField("service", "weather"),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create weather service")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		GameRepo:      gameRepo.NewMemory(),
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Logger:        logger.WithField("service", "game"),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create game service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create messaging service")
	}

	// Startup check only; a failure here is retried when a table opens
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := forecaster.Ping(ctx); err != nil {
		logger.WithError(err).Warn("Weather API is not reachable yet")
	}
	cancel()

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		DefaultCity:      cfg.DefaultCity,
		GameService:      gameSvc,
		WeatherService:   weatherSvc,
		MessagingService: messagingSvc,
		Logger:           logger.WithField("component", "discord"),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("Error stopping bot")
	}

	logger.Info("Bot has been shut down")
}
