package weather

// WeatherError is a custom error type for weather resolution errors
type WeatherError string

// Error implements the error interface
func (e WeatherError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           WeatherError = "config cannot be nil"
	ErrNilForecaster       WeatherError = "forecaster cannot be nil"
	ErrNilLocator          WeatherError = "locator cannot be nil"
	ErrNilClock            WeatherError = "clock cannot be nil"
	ErrNilLogger           WeatherError = "logger cannot be nil"
	ErrEmptyCity           WeatherError = "city cannot be empty"
	ErrCityNotFound        WeatherError = "city not found"
	ErrWeatherUnavailable  WeatherError = "weather service unavailable"
	ErrLocationUnavailable WeatherError = "location could not be detected"
)
