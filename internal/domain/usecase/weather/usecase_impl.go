package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/gateway/api"
	"weather-cli/internal/domain/model"
	"weather-cli/pkg/log"
	"weather-cli/pkg/util/numberutils"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// CurrentWeather returns the observed weather for a ZIP code
func (uc *weatherUseCase) CurrentWeather(ctx context.Context, zip string) (*entity.CurrentWeather, error) {
	if err := validateZip(zip); err != nil {
		return nil, err
	}

	response, err := uc.apiGateway.GetCurrentWeather(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return convertCurrentWeather(zip, response)
}

// Forecast returns one forecast step per day for a ZIP code
func (uc *weatherUseCase) Forecast(ctx context.Context, zip string) (*entity.ForecastResult, error) {
	if err := validateZip(zip); err != nil {
		return nil, err
	}

	response, err := uc.apiGateway.GetForecast(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return convertForecast(zip, response)
}

// AirQuality geocodes a ZIP code, then returns the air quality at its coordinates
func (uc *weatherUseCase) AirQuality(ctx context.Context, zip string) (*entity.AirQualityReport, error) {
	if err := validateZip(zip); err != nil {
		return nil, err
	}

	geocode, err := uc.apiGateway.GetGeocode(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode zip code: %w", err)
	}

	location, err := convertGeoLocation(geocode)
	if err != nil {
		return nil, err
	}
	log.Debug("Zip code geocoded",
		zap.String("zip", zip),
		zap.Float64("lat", location.Latitude),
		zap.Float64("lon", location.Longitude))

	response, err := uc.apiGateway.GetAirPollution(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get air pollution: %w", err)
	}

	sample, err := convertAirQuality(response)
	if err != nil {
		return nil, err
	}

	return &entity.AirQualityReport{
		Zip:      zip,
		Location: *location,
		Sample:   *sample,
	}, nil
}

// Alerts probes the current weather payload of a ZIP code for an "alerts" field.
// The current weather endpoint does not return alerts, so Active is false for
// every answer the live API gives today.
func (uc *weatherUseCase) Alerts(ctx context.Context, zip string) (*entity.WeatherAlerts, error) {
	if err := validateZip(zip); err != nil {
		return nil, err
	}

	payload, err := uc.apiGateway.GetRawWeather(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather alerts: %w", err)
	}

	return convertAlerts(zip, payload)
}

func validateZip(zip string) error {
	if !numberutils.IsValidZip(zip) {
		return fmt.Errorf("%w: %q", model.ErrInvalidZip, zip)
	}
	return nil
}
