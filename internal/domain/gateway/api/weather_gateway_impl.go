package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-cli/internal/domain/model"
	"weather-cli/internal/domain/model/external"
	"weather-cli/pkg/http"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"
	geocodeZipPath     = "/geo/1.0/zip"
	airPollutionPath   = "/data/2.5/air_pollution"
)

var jsonHeaders = map[string]string{"Accept": "application/json"}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	settings   Settings
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(httpClient *http.Client, settings Settings) WeatherGateway {
	if settings.Units == "" {
		settings.Units = "imperial"
	}
	if settings.Country == "" {
		settings.Country = "us"
	}

	return &weatherGatewayImpl{
		httpClient: httpClient,
		settings:   settings,
	}
}

// GetCurrentWeather gets the current weather for a US ZIP code
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, zip string) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := w.get(ctx, currentWeatherPath, w.weatherParams(zip), response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetForecast gets the 5 day / 3 hour forecast for a US ZIP code
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, zip string) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := w.get(ctx, forecastPath, w.weatherParams(zip), response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetGeocode resolves a US ZIP code to coordinates and a place name
func (w *weatherGatewayImpl) GetGeocode(ctx context.Context, zip string) (external.JSONObject, error) {
	params := map[string]string{
		"zip":   w.zipParam(zip),
		"appid": w.settings.APIKey,
	}

	response := external.JSONObject{}
	if err := w.get(ctx, geocodeZipPath, params, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetAirPollution gets the current air pollution at a coordinate
func (w *weatherGatewayImpl) GetAirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error) {
	params := map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"appid": w.settings.APIKey,
	}

	response := &external.AirPollutionResponse{}
	if err := w.get(ctx, airPollutionPath, params, response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetRawWeather gets the current weather payload without a fixed schema
func (w *weatherGatewayImpl) GetRawWeather(ctx context.Context, zip string) (external.JSONObject, error) {
	response := external.JSONObject{}
	if err := w.get(ctx, currentWeatherPath, w.weatherParams(zip), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (w *weatherGatewayImpl) weatherParams(zip string) map[string]string {
	return map[string]string{
		"zip":   w.zipParam(zip),
		"appid": w.settings.APIKey,
		"units": w.settings.Units,
	}
}

func (w *weatherGatewayImpl) zipParam(zip string) string {
	return zip + "," + w.settings.Country
}

// get executes one GET and classifies its failure. A 2xx answer that does not
// decode is a mapping problem, anything else is a transport problem.
func (w *weatherGatewayImpl) get(ctx context.Context, path string, params map[string]string, target any) error {
	_, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithHeaders(jsonHeaders).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	if errors.Is(err, http.ErrDecode) {
		return fmt.Errorf("%w: %s: %w", model.ErrMapping, path, err)
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		if errorResponse.Message != "" {
			return fmt.Errorf("%w: %s: %s: %w", model.ErrTransport, path, errorResponse.Message, err)
		}
	}

	return fmt.Errorf("%w: %s: %w", model.ErrTransport, path, err)
}
