package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

// DefaultIPGeolocationURL is the ip-api endpoint restricted to the fields we read
const DefaultIPGeolocationURL = "http://ip-api.com/json/?fields=status,message,city,lat,lon"

// IPAPIConfig holds configuration for the ip-api locator
type IPAPIConfig struct {
	// URL is the full lookup URL
	URL string

	// HTTPClient is optional; a client with Timeout is created when nil
	HTTPClient *http.Client

	// Timeout applies when HTTPClient is nil
	Timeout time.Duration
}

type ipAPI struct {
	client *http.Client
	url    string
}

// NewIPAPI creates a locator backed by ip-api.com
func NewIPAPI(cfg *IPAPIConfig) (Locator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	target := cfg.URL
	if target == "" {
		target = DefaultIPGeolocationURL
	}

	return &ipAPI{
		client: client,
		url:    target,
	}, nil
}

// Detect looks up the city and coordinates of the caller's public IP
func (l *ipAPI) Detect(ctx context.Context) (*models.Location, error) {
	resp, err := getJSON(ctx, l.client, l.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body ipLocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if body.Status != "success" {
		reason := body.Message
		if reason == "" {
			reason = "lookup did not succeed"
		}
		return nil, fmt.Errorf("%w: %s", ErrDetectionFailed, reason)
	}
	if strings.TrimSpace(body.City) == "" || body.Lat == nil || body.Lon == nil {
		return nil, ErrIncompleteLocation
	}

	return &models.Location{
		City:      body.City,
		Latitude:  *body.Lat,
		Longitude: *body.Lon,
	}, nil
}
