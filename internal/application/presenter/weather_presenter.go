package presenter

import (
	"strconv"

	"weather-cli/internal/domain/entity"
	"weather-cli/pkg/msg"
)

// Each render function returns the lines of one output block. A block starts
// with an empty line, which separates it from the prompt above.

// Menu renders the option list.
func Menu() []string {
	return []string{
		"",
		msg.GetMessage("menu.header"),
		msg.GetMessage("menu.current"),
		msg.GetMessage("menu.forecast"),
		msg.GetMessage("menu.air"),
		msg.GetMessage("menu.alerts"),
		msg.GetMessage("menu.compare"),
		msg.GetMessage("menu.exit"),
	}
}

func CurrentWeather(w *entity.CurrentWeather) []string {
	return []string{
		"",
		msg.GetMessage("weather.current.header", w.LocationName, w.Zip),
		msg.GetMessage("weather.current.temperature", oneDecimal(w.TemperatureF)),
		msg.GetMessage("weather.current.humidity", w.HumidityPct),
		msg.GetMessage("weather.current.wind", w.WindSpeedMph),
		msg.GetMessage("weather.current.conditions", w.Conditions),
	}
}

func Forecast(f *entity.ForecastResult) []string {
	lines := []string{
		"",
		msg.GetMessage("weather.forecast.header", f.LocationName, f.Zip),
	}
	for _, entry := range f.Entries {
		lines = append(lines,
			"",
			msg.GetMessage("weather.forecast.date", entry.Timestamp),
			msg.GetMessage("weather.current.temperature", oneDecimal(entry.TemperatureF)),
			msg.GetMessage("weather.current.conditions", entry.Conditions),
		)
	}
	return lines
}

func AirQuality(a *entity.AirQualityReport) []string {
	return []string{
		"",
		msg.GetMessage("weather.air.header", a.Location.LocationName, a.Zip),
		msg.GetMessage("weather.air.index", a.Sample.AQI),
		msg.GetMessage("weather.air.pm25", oneDecimal(a.Sample.PM25)),
		msg.GetMessage("weather.air.pm10", oneDecimal(a.Sample.PM10)),
	}
}

func Alerts(a *entity.WeatherAlerts) []string {
	lines := []string{
		"",
		msg.GetMessage("weather.alerts.header", a.LocationName, a.Zip),
	}
	if a.Active {
		return append(lines, msg.GetMessage("weather.alerts.raw", a.Raw))
	}
	return append(lines, msg.GetMessage("weather.alerts.none"))
}

// ComparisonHeader opens the option 5 output.
func ComparisonHeader() []string {
	return []string{"", msg.GetMessage("weather.compare.header")}
}

func ComparisonEntry(w *entity.CurrentWeather) []string {
	return []string{
		"",
		msg.GetMessage("weather.compare.entry", w.LocationName, w.Zip),
		msg.GetMessage("weather.current.temperature", oneDecimal(w.TemperatureF)),
		msg.GetMessage("weather.current.conditions", w.Conditions),
	}
}

func ComparisonSkipped(zip string) []string {
	return []string{"", msg.GetMessage("weather.compare.skip", zip)}
}

func ComparisonUnavailable(zip string) []string {
	return []string{"", msg.GetMessage("weather.compare.unavailable", zip)}
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
