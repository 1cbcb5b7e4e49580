package entity

// UnknownLocation names a place the geocoder did not name.
const UnknownLocation = "Unknown Location"

type GeoLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"locationName"`
}

// AirQualitySample holds the AQI (1 good to 5 very poor) and particulate matter in μg/m³.
type AirQualitySample struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}

type AirQualityReport struct {
	Zip      string           `json:"zip"`
	Location GeoLocation      `json:"location"`
	Sample   AirQualitySample `json:"sample"`
}
