package entity

// CurrentWeather is the observed weather at a ZIP code, in imperial units.
type CurrentWeather struct {
	Zip          string  `json:"zip"`
	LocationName string  `json:"locationName"`
	TemperatureF float64 `json:"temperatureF"`
	HumidityPct  float64 `json:"humidityPct"`
	WindSpeedMph float64 `json:"windSpeedMph"`
	Conditions   string  `json:"conditions"`
}
