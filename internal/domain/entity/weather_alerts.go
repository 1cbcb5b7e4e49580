package entity

// WeatherAlerts carries the "alerts" field of a weather payload as compact JSON.
type WeatherAlerts struct {
	Zip          string `json:"zip"`
	LocationName string `json:"locationName"`
	Active       bool   `json:"active"`
	Raw          string `json:"raw,omitempty"`
}
