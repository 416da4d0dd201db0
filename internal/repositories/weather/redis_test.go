package weather

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         5 * time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seoul() *models.Weather {
	temperature := 14.5
	return &models.Weather{
		City:          "Seoul",
		Temperature:   &temperature,
		ConditionCode: 61,
		Condition:     models.WeatherRain,
		Latitude:      37.5665,
		Longitude:     126.978,
		FetchedAt:     s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetWeather() {
	s.Require().NoError(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{Weather: s.seoul()}))

	cached, err := s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "Seoul"})

	s.Require().NoError(err)
	s.Equal("Seoul", cached.City)
	s.Require().NotNil(cached.Temperature)
	s.InDelta(14.5, *cached.Temperature, 0.001)
	s.Equal(61, cached.ConditionCode)
	s.Equal(models.WeatherRain, cached.Condition)
	s.True(s.testNow.Equal(cached.FetchedAt))
}

func (s *RedisRepositoryTestSuite) TestGetWeather_CaseInsensitiveCity() {
	s.Require().NoError(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{Weather: s.seoul()}))

	cached, err := s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "  SEOUL "})

	s.Require().NoError(err)
	s.Equal("Seoul", cached.City)
	s.True(s.mr.Exists("weather:seoul"))
}

func (s *RedisRepositoryTestSuite) TestGetWeather_NotFound() {
	_, err := s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "Busan"})
	s.ErrorIs(err, ErrWeatherNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetWeather_ExpiresAfterTTL() {
	s.Require().NoError(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{Weather: s.seoul()}))

	s.mr.FastForward(4 * time.Minute)
	_, err := s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "Seoul"})
	s.NoError(err)

	s.mr.FastForward(2 * time.Minute)
	_, err = s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "Seoul"})
	s.ErrorIs(err, ErrWeatherNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveWeather_TTLOverride() {
	s.Require().NoError(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{
		Weather: s.seoul(),
		TTL:     time.Minute,
	}))

	s.Equal(time.Minute, s.mr.TTL("weather:seoul"))
}

func (s *RedisRepositoryTestSuite) TestSaveWeather_Validation() {
	s.Error(s.repo.SaveWeather(s.ctx, nil))
	s.Error(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{Weather: &models.Weather{City: " "}}))
}

func (s *RedisRepositoryTestSuite) TestDeleteWeather() {
	s.Require().NoError(s.repo.SaveWeather(s.ctx, &SaveWeatherInput{Weather: s.seoul()}))

	s.Require().NoError(s.repo.DeleteWeather(s.ctx, &DeleteWeatherInput{City: "seoul"}))

	_, err := s.repo.GetWeather(s.ctx, &GetWeatherInput{City: "Seoul"})
	s.ErrorIs(err, ErrWeatherNotFound)
}
