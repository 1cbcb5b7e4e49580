package api

import (
	"context"

	"weather-cli/internal/domain/model/external"
)

// WeatherGateway defines the OpenWeatherMap calls. Each call issues exactly one
// request; failures wrap model.ErrTransport or model.ErrMapping.
type WeatherGateway interface {
	// GetCurrentWeather gets the current weather for a US ZIP code
	GetCurrentWeather(ctx context.Context, zip string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5 day / 3 hour forecast for a US ZIP code
	GetForecast(ctx context.Context, zip string) (*external.ForecastResponse, error)

	// GetGeocode resolves a US ZIP code to coordinates and a place name
	GetGeocode(ctx context.Context, zip string) (external.JSONObject, error)

	// GetAirPollution gets the current air pollution at a coordinate
	GetAirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error)

	// GetRawWeather gets the current weather payload without a fixed schema
	GetRawWeather(ctx context.Context, zip string) (external.JSONObject, error)
}

// Settings holds the request parameters shared by every call.
type Settings struct {
	APIKey  string
	Units   string
	Country string
}
