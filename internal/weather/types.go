package weather

import "time"

// GeocodeInput contains parameters for resolving a city
type GeocodeInput struct {
	City string
}

// GetCurrentInput contains parameters for a current conditions lookup
type GetCurrentInput struct {
	Latitude  float64
	Longitude float64
}

// GetCurrentOutput contains the current conditions at a coordinate
type GetCurrentOutput struct {
	// Temperature in Celsius, nil when the provider omitted it
	Temperature *float64

	// Code is the WMO weather code
	Code int

	// Time is the observation time reported by the provider
	Time time.Time
}

// Provider wire formats

type forecastResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Current   *currentResponse `json:"current"`
}

type currentResponse struct {
	Time          string   `json:"time"`
	Temperature2m *float64 `json:"temperature_2m"`
	WeatherCode   *int     `json:"weather_code"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type ipLocationResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	City    string   `json:"city"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}
