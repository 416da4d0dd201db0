package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type OpenMeteoTestSuite struct {
	suite.Suite
	server     *httptest.Server
	mux        *http.ServeMux
	forecaster Forecaster
	ctx        context.Context
}

func (s *OpenMeteoTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	forecaster, err := NewOpenMeteo(&OpenMeteoConfig{
		ForecastURL:  s.server.URL,
		GeocodingURL: s.server.URL + "/",
		HTTPClient:   s.server.Client(),
	})
	s.Require().NoError(err)
	s.forecaster = forecaster
}

func (s *OpenMeteoTestSuite) TearDownTest() {
	s.server.Close()
}

func TestOpenMeteoTestSuite(t *testing.T) {
	suite.Run(t, new(OpenMeteoTestSuite))
}

func (s *OpenMeteoTestSuite) TestNewOpenMeteo_NilConfig() {
	_, err := NewOpenMeteo(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *OpenMeteoTestSuite) TestPing() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("0", r.URL.Query().Get("latitude"))
		s.Equal("temperature_2m", r.URL.Query().Get("current"))
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":26.1}}`))
	})

	s.NoError(s.forecaster.Ping(s.ctx))
}

func (s *OpenMeteoTestSuite) TestPing_ServerError() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	s.ErrorIs(s.forecaster.Ping(s.ctx), ErrUnexpectedStatus)
}

func (s *OpenMeteoTestSuite) TestGeocode() {
	s.mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Busan", r.URL.Query().Get("name"))
		s.Equal("1", r.URL.Query().Get("count"))
		s.Equal("en", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"results":[{"name":"Busan","latitude":35.1028,"longitude":129.0403,"country":"South Korea"}]}`))
	})

	location, err := s.forecaster.Geocode(s.ctx, &GeocodeInput{City: " Busan "})

	s.Require().NoError(err)
	s.Equal("Busan", location.City)
	s.InDelta(35.1028, location.Latitude, 0.0001)
	s.InDelta(129.0403, location.Longitude, 0.0001)
}

func (s *OpenMeteoTestSuite) TestGeocode_NoResults() {
	s.mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	})

	_, err := s.forecaster.Geocode(s.ctx, &GeocodeInput{City: "Atlantis"})

	s.ErrorIs(err, ErrLocationNotFound)
}

func (s *OpenMeteoTestSuite) TestGeocode_EmptyCity() {
	_, err := s.forecaster.Geocode(s.ctx, &GeocodeInput{City: "  "})
	s.ErrorIs(err, ErrEmptyCity)
}

func (s *OpenMeteoTestSuite) TestGetCurrent() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("37.5665", r.URL.Query().Get("latitude"))
		s.Equal("126.978", r.URL.Query().Get("longitude"))
		s.Equal("temperature_2m,weather_code", r.URL.Query().Get("current"))
		_, _ = w.Write([]byte(`{"latitude":37.55,"longitude":127.0,"current":{"time":"2026-10-15T09:00","temperature_2m":14.2,"weather_code":61}}`))
	})

	output, err := s.forecaster.GetCurrent(s.ctx, &GetCurrentInput{Latitude: 37.5665, Longitude: 126.978})

	s.Require().NoError(err)
	s.Require().NotNil(output.Temperature)
	s.InDelta(14.2, *output.Temperature, 0.001)
	s.Equal(61, output.Code)
	s.Equal(2026, output.Time.Year())
}

func (s *OpenMeteoTestSuite) TestGetCurrent_MissingFieldsUseDefaults() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"time":"2026-10-15T09:00"}}`))
	})

	output, err := s.forecaster.GetCurrent(s.ctx, &GetCurrentInput{})

	s.Require().NoError(err)
	s.Nil(output.Temperature)
	s.Equal(DefaultCode, output.Code)
}

func (s *OpenMeteoTestSuite) TestGetCurrent_MissingCurrent() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":1}`))
	})

	_, err := s.forecaster.GetCurrent(s.ctx, &GetCurrentInput{})

	s.ErrorIs(err, ErrMalformedResponse)
}

func (s *OpenMeteoTestSuite) TestGetCurrent_InvalidJSON() {
	s.mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := s.forecaster.GetCurrent(s.ctx, &GetCurrentInput{})

	s.ErrorIs(err, ErrMalformedResponse)
}
