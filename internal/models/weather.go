package models

import (
	"time"
)

// WeatherCondition is the gameplay bucket a live weather reading falls into
type WeatherCondition string

const (
	// WeatherSunny unlocks the set-a-die-to-six ability
	WeatherSunny WeatherCondition = "sunny"

	// WeatherCloudy unlocks the reroll-up-to-two-dice ability
	WeatherCloudy WeatherCondition = "cloudy"

	// WeatherRain unlocks the +5 bonus ability
	WeatherRain WeatherCondition = "rain"

	// WeatherSnow unlocks the swap-two-dice ability
	WeatherSnow WeatherCondition = "snow"

	// WeatherStorm unlocks the full reroll ability
	WeatherStorm WeatherCondition = "storm"
)

// IsValid reports whether the condition is one of the five known buckets
func (c WeatherCondition) IsValid() bool {
	switch c {
	case WeatherSunny, WeatherCloudy, WeatherRain, WeatherSnow, WeatherStorm:
		return true
	}
	return false
}

// OrDefault returns the condition itself, or cloudy when it is unknown
func (c WeatherCondition) OrDefault() WeatherCondition {
	if c.IsValid() {
		return c
	}
	return WeatherCloudy
}

// Weather is a resolved weather reading for a city
type Weather struct {
	// City is the location name the weather was requested for
	City string

	// Temperature is the current temperature in Celsius, nil when the provider omitted it
	Temperature *float64

	// ConditionCode is the raw WMO weather code returned by the provider
	ConditionCode int

	// Condition is the gameplay bucket derived from ConditionCode
	Condition WeatherCondition

	// Latitude of the resolved location
	Latitude float64

	// Longitude of the resolved location
	Longitude float64

	// FetchedAt is the observation time reported by the provider, or the fetch time when it reports none
	FetchedAt time.Time
}

// Clone returns a deep copy of the reading
func (w *Weather) Clone() *Weather {
	if w == nil {
		return nil
	}
	out := *w
	if w.Temperature != nil {
		t := *w.Temperature
		out.Temperature = &t
	}
	return &out
}

// Location is a city with coordinates, as detected from the caller's IP
type Location struct {
	City      string
	Latitude  float64
	Longitude float64
}
