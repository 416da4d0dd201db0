package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

const (
	DefaultForecastURL  = "https://api.open-meteo.com"
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultTimeout      = 10 * time.Second

	// Open-Meteo reports current time as local ISO8601 without seconds
	openMeteoTimeLayout = "2006-01-02T15:04"
)

// OpenMeteoConfig holds configuration for the Open-Meteo client
type OpenMeteoConfig struct {
	// ForecastURL is the base URL of the forecast API
	ForecastURL string

	// GeocodingURL is the base URL of the geocoding API
	GeocodingURL string

	// Language is the language geocoding results are returned in
	Language string

	// HTTPClient is optional; a client with Timeout is created when nil
	HTTPClient *http.Client

	// Timeout applies when HTTPClient is nil
	Timeout time.Duration
}

// openMeteo implements Forecaster against the Open-Meteo APIs
type openMeteo struct {
	client       *http.Client
	forecastURL  string
	geocodingURL string
	language     string
}

// NewOpenMeteo creates a new Open-Meteo backed forecaster
func NewOpenMeteo(cfg *OpenMeteoConfig) (Forecaster, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	forecastURL := cfg.ForecastURL
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	geocodingURL := cfg.GeocodingURL
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}

	return &openMeteo{
		client:       client,
		forecastURL:  strings.TrimRight(forecastURL, "/"),
		geocodingURL: strings.TrimRight(geocodingURL, "/"),
		language:     language,
	}, nil
}

// Ping requests a minimal forecast to check the API is reachable
func (o *openMeteo) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("latitude", "0")
	query.Set("longitude", "0")
	query.Set("current", "temperature_2m")

	resp, err := o.get(ctx, o.forecastURL+"/v1/forecast", query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Geocode resolves a city name to the coordinates of its best match
func (o *openMeteo) Geocode(ctx context.Context, input *GeocodeInput) (*models.Location, error) {
	if input == nil || strings.TrimSpace(input.City) == "" {
		return nil, ErrEmptyCity
	}

	query := url.Values{}
	query.Set("name", strings.TrimSpace(input.City))
	query.Set("count", "1")
	query.Set("language", o.language)
	query.Set("format", "json")

	resp, err := o.get(ctx, o.geocodingURL+"/v1/search", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, input.City)
	}

	result := body.Results[0]
	return &models.Location{
		City:      result.Name,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}, nil
}

// GetCurrent returns the current temperature and weather code at a coordinate
func (o *openMeteo) GetCurrent(ctx context.Context, input *GetCurrentInput) (*GetCurrentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(input.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(input.Longitude, 'f', -1, 64))
	query.Set("current", "temperature_2m,weather_code")

	resp, err := o.get(ctx, o.forecastURL+"/v1/forecast", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if body.Current == nil {
		return nil, fmt.Errorf("%w: missing current conditions", ErrMalformedResponse)
	}

	code := DefaultCode
	if body.Current.WeatherCode != nil {
		code = *body.Current.WeatherCode
	}

	output := &GetCurrentOutput{
		Temperature: body.Current.Temperature2m,
		Code:        code,
	}
	if t, err := time.Parse(openMeteoTimeLayout, body.Current.Time); err == nil {
		output.Time = t
	}
	return output, nil
}

// get performs a GET and returns the response when the status is 2xx
func (o *openMeteo) get(ctx context.Context, endpoint string, query url.Values) (*http.Response, error) {
	return getJSON(ctx, o.client, endpoint+"?"+query.Encode())
}

func getJSON(ctx context.Context, client *http.Client, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", req.URL.Host, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, req.URL.Host, resp.StatusCode)
	}
	return resp, nil
}
