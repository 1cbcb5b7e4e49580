package external

// Pointer fields are required by the mapper; nil means the field was absent.

// CurrentWeatherResponse represents the response of /data/2.5/weather
type CurrentWeatherResponse struct {
	Name    *string        `json:"name"`
	Main    *MainDTO       `json:"main"`
	Wind    *WindDTO       `json:"wind"`
	Weather []ConditionDTO `json:"weather"`
}

// MainDTO holds the measured values of a weather sample
type MainDTO struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

// WindDTO holds the wind of a weather sample
type WindDTO struct {
	Speed *float64 `json:"speed"`
}

// ConditionDTO is one element of the "weather" list
type ConditionDTO struct {
	Main        string  `json:"main"`
	Description *string `json:"description"`
}

// ForecastResponse represents the response of /data/2.5/forecast
type ForecastResponse struct {
	List *[]ForecastItemDTO `json:"list"`
	City *CityDTO           `json:"city"`
}

// ForecastItemDTO is one 3-hour step of the forecast
type ForecastItemDTO struct {
	DtTxt   *string        `json:"dt_txt"`
	Main    *MainDTO       `json:"main"`
	Weather []ConditionDTO `json:"weather"`
}

// CityDTO identifies the forecast location
type CityDTO struct {
	Name *string `json:"name"`
}

// AirPollutionResponse represents the response of /data/2.5/air_pollution
type AirPollutionResponse struct {
	List *[]AirPollutionItemDTO `json:"list"`
}

// AirPollutionItemDTO is one air quality sample
type AirPollutionItemDTO struct {
	Main       *AirQualityIndexDTO `json:"main"`
	Components *ComponentsDTO      `json:"components"`
}

// AirQualityIndexDTO holds the 1-5 air quality index
type AirQualityIndexDTO struct {
	Aqi *int `json:"aqi"`
}

// ComponentsDTO holds pollutant concentrations in μg/m³
type ComponentsDTO struct {
	Pm25 *float64 `json:"pm2_5"`
	Pm10 *float64 `json:"pm10"`
}

// APIErrorResponse represents error responses from OpenWeatherMap
type APIErrorResponse struct {
	Cod     any    `json:"cod"` // number or string depending on the endpoint
	Message string `json:"message"`
}
