package weather

import (
	"context"

	"weather-cli/internal/domain/entity"
)

type UseCase interface {
	// CurrentWeather returns the observed weather for a ZIP code
	CurrentWeather(ctx context.Context, zip string) (*entity.CurrentWeather, error)

	// Forecast returns one forecast step per day for a ZIP code
	Forecast(ctx context.Context, zip string) (*entity.ForecastResult, error)

	// AirQuality geocodes a ZIP code, then returns the air quality at its coordinates
	AirQuality(ctx context.Context, zip string) (*entity.AirQualityReport, error)

	// Alerts probes the current weather payload of a ZIP code for an "alerts" field
	Alerts(ctx context.Context, zip string) (*entity.WeatherAlerts, error)
}
