package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/model"
	"weather-cli/internal/domain/model/external"
)

// convertCurrentWeather converts the current weather response to an entity
func convertCurrentWeather(zip string, response *external.CurrentWeatherResponse) (*entity.CurrentWeather, error) {
	if response.Name == nil {
		return nil, model.MissingField("name")
	}
	if response.Main == nil || response.Main.Temp == nil {
		return nil, model.MissingField("main.temp")
	}
	if response.Main.Humidity == nil {
		return nil, model.MissingField("main.humidity")
	}
	if response.Wind == nil || response.Wind.Speed == nil {
		return nil, model.MissingField("wind.speed")
	}

	conditions, err := firstDescription(response.Weather, "weather")
	if err != nil {
		return nil, err
	}

	return &entity.CurrentWeather{
		Zip:          zip,
		LocationName: *response.Name,
		TemperatureF: *response.Main.Temp,
		HumidityPct:  *response.Main.Humidity,
		WindSpeedMph: *response.Wind.Speed,
		Conditions:   conditions,
	}, nil
}

// convertForecast keeps every ForecastStride-th step, starting with the first.
// Every step must be well formed, sampled or not.
func convertForecast(zip string, response *external.ForecastResponse) (*entity.ForecastResult, error) {
	if response.City == nil || response.City.Name == nil {
		return nil, model.MissingField("city.name")
	}
	if response.List == nil {
		return nil, model.MissingField("list")
	}

	items := *response.List
	for i, item := range items {
		if err := validateForecastItem(i, item); err != nil {
			return nil, err
		}
	}

	entries := make([]entity.ForecastEntry, 0, (len(items)+entity.ForecastStride-1)/entity.ForecastStride)
	for i := 0; i < len(items); i += entity.ForecastStride {
		item := items[i]
		conditions, err := firstDescription(item.Weather, fmt.Sprintf("list[%d].weather", i))
		if err != nil {
			return nil, err
		}

		entries = append(entries, entity.ForecastEntry{
			Timestamp:    *item.DtTxt,
			TemperatureF: *item.Main.Temp,
			Conditions:   conditions,
		})
	}

	return &entity.ForecastResult{
		Zip:          zip,
		LocationName: *response.City.Name,
		Entries:      entries,
	}, nil
}

func validateForecastItem(i int, item external.ForecastItemDTO) error {
	if item.DtTxt == nil {
		return model.MissingField(fmt.Sprintf("list[%d].dt_txt", i))
	}
	if item.Main == nil || item.Main.Temp == nil {
		return model.MissingField(fmt.Sprintf("list[%d].main.temp", i))
	}
	if item.Main.Humidity == nil {
		return model.MissingField(fmt.Sprintf("list[%d].main.humidity", i))
	}
	if item.Weather == nil {
		return model.MissingField(fmt.Sprintf("list[%d].weather", i))
	}
	for j, condition := range item.Weather {
		if condition.Description == nil {
			return model.MissingField(fmt.Sprintf("list[%d].weather[%d].description", i, j))
		}
	}
	return nil
}

// convertGeoLocation reads the coordinates of a geocoding answer
func convertGeoLocation(payload external.JSONObject) (*entity.GeoLocation, error) {
	lat, ok := payload.Float("lat")
	if !ok {
		return nil, model.MissingField("lat")
	}
	lon, ok := payload.Float("lon")
	if !ok {
		return nil, model.MissingField("lon")
	}

	return &entity.GeoLocation{
		Latitude:     lat,
		Longitude:    lon,
		LocationName: payload.StringOrDefault("name", entity.UnknownLocation),
	}, nil
}

// convertAirQuality takes the first sample of the air pollution response
func convertAirQuality(response *external.AirPollutionResponse) (*entity.AirQualitySample, error) {
	if response.List == nil {
		return nil, model.MissingField("list")
	}
	if len(*response.List) == 0 {
		return nil, model.EmptyList("list")
	}

	item := (*response.List)[0]
	if item.Main == nil || item.Main.Aqi == nil {
		return nil, model.MissingField("list[0].main.aqi")
	}
	if item.Components == nil || item.Components.Pm25 == nil {
		return nil, model.MissingField("list[0].components.pm2_5")
	}
	if item.Components.Pm10 == nil {
		return nil, model.MissingField("list[0].components.pm10")
	}

	return &entity.AirQualitySample{
		AQI:  *item.Main.Aqi,
		PM25: *item.Components.Pm25,
		PM10: *item.Components.Pm10,
	}, nil
}

// convertAlerts reports the "alerts" field of a weather payload, if any
func convertAlerts(zip string, payload external.JSONObject) (*entity.WeatherAlerts, error) {
	alerts := &entity.WeatherAlerts{
		Zip:          zip,
		LocationName: payload.StringOrDefault("name", entity.UnknownLocation),
	}

	raw, ok := payload.Raw("alerts")
	if !ok {
		return alerts, nil
	}

	rendered, err := renderJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: alerts: %w", model.ErrMapping, err)
	}
	alerts.Active = true
	alerts.Raw = rendered
	return alerts, nil
}

// renderJSON prints a JSON value on one line with object keys sorted and
// without HTML escaping.
func renderJSON(raw json.RawMessage) (string, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}

	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(out.String(), "\n"), nil
}

// firstDescription returns the description of the first condition. The list
// is checked before indexing: an empty list is a mapping error.
func firstDescription(conditions []external.ConditionDTO, field string) (string, error) {
	if len(conditions) == 0 {
		return "", model.EmptyList(field)
	}
	if conditions[0].Description == nil {
		return "", model.MissingField(field + "[0].description")
	}
	return *conditions[0].Description, nil
}
