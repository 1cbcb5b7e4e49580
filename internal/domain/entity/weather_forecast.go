package entity

// ForecastStride keeps one 3-hour step out of eight, about one per day.
const ForecastStride = 8

type ForecastEntry struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureF float64 `json:"temperatureF"`
	Conditions   string  `json:"conditions"`
}

type ForecastResult struct {
	Zip          string          `json:"zip"`
	LocationName string          `json:"locationName"`
	Entries      []ForecastEntry `json:"entries"`
}
