package controller

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	_ "weather-cli/configs"
	"weather-cli/internal/domain/gateway/api"
	"weather-cli/internal/domain/usecase/weather"
	pkghttp "weather-cli/pkg/http"
)

const menuBlock = "\nWeather App - Select an option:\n1. Current Weather\n2. 5-Day Forecast\n3. Air Quality\n4. Weather Alerts\n5. Compare Multiple Locations\n6. Exit\n"

// fakeOpenWeather serves canned bodies keyed by path and zip (or lat for air pollution).
type fakeOpenWeather struct {
	mu     sync.Mutex
	bodies map[string]string
	paths  []string
}

func (f *fakeOpenWeather) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := r.URL.Path + "?" + q.Get("zip") + q.Get("lat")

	f.mu.Lock()
	f.paths = append(f.paths, key)
	body, ok := f.bodies[key]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		return
	}
	_, _ = w.Write([]byte(body))
}

func newTestMenu(t *testing.T, bodies map[string]string, input string) (*MenuController, *bytes.Buffer, *fakeOpenWeather) {
	t.Helper()
	fake := &fakeOpenWeather{bodies: bodies}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	httpClient := pkghttp.NewHttpClient(srv.URL, pkghttp.ClientOptions{})
	t.Cleanup(httpClient.CloseIdleConnections)
	gateway := api.NewWeatherGateway(httpClient, api.Settings{APIKey: "test-key"})
	out := &bytes.Buffer{}
	return NewMenuController(strings.NewReader(input), out, weather.NewWeatherUseCase(gateway)), out, fake
}

const mountainView = `{"main":{"temp":68.0,"humidity":55},"wind":{"speed":5.0},"weather":[{"description":"clear sky"}],"name":"Mountain View"}`

func TestCurrentWeatherEndToEnd(t *testing.T) {
	menu, out, _ := newTestMenu(t, map[string]string{
		"/data/2.5/weather?94040,us": mountainView,
	}, "1\n94040\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := menuBlock +
		"Enter ZIP code:\n" +
		"\n" +
		"Current Weather for Mountain View (94040)\n" +
		"Temperature: 68.0°F\n" +
		"Humidity: 55%\n" +
		"Wind Speed: 5 mph\n" +
		"Conditions: clear sky\n" +
		menuBlock
	if got := out.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCurrentWeatherTwiceIsIdentical(t *testing.T) {
	menu, out, _ := newTestMenu(t, map[string]string{
		"/data/2.5/weather?94040,us": mountainView,
	}, "1\n94040\n1\n94040\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	blocks := strings.Split(out.String(), menuBlock)
	// "", first answer, second answer, ""
	if len(blocks) != 4 {
		t.Fatalf("expected three menus, got output %q", out.String())
	}
	if blocks[1] != blocks[2] {
		t.Errorf("expected identical answers, got %q and %q", blocks[1], blocks[2])
	}
}

func TestInvalidZipAndOption(t *testing.T) {
	menu, out, fake := newTestMenu(t, nil, "9\n2\n1234\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Invalid option, please try again\n") {
		t.Errorf("expected invalid option line, got %q", got)
	}
	if !strings.Contains(got, "Invalid ZIP code. Please enter a 5-digit US ZIP code.\n") {
		t.Errorf("expected invalid zip line, got %q", got)
	}
	if len(fake.paths) != 0 {
		t.Errorf("expected no API calls, got %v", fake.paths)
	}
}

func TestUnavailableMessages(t *testing.T) {
	tests := []struct {
		option string
		want   string
	}{
		{"1", "Unable to fetch weather data for ZIP code 00000"},
		{"2", "Unable to fetch forecast data for ZIP code 00000"},
		{"3", "Unable to fetch air quality data for ZIP code 00000"},
		{"4", "Unable to fetch weather alerts for ZIP code 00000"},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			menu, out, _ := newTestMenu(t, nil, tt.option+"\n00000\n6\n")

			if err := menu.Run(context.Background()); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if !strings.Contains(out.String(), "Enter ZIP code:\n"+tt.want+"\n") {
				t.Errorf("expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestEmptyConditionsIsReportedNotFatal(t *testing.T) {
	menu, out, _ := newTestMenu(t, map[string]string{
		"/data/2.5/weather?12345,us": `{"main":{"temp":1,"humidity":2},"wind":{"speed":3},"weather":[],"name":"X"}`,
	}, "1\n12345\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Unable to fetch weather data for ZIP code 12345\n") {
		t.Errorf("expected unavailable line, got %q", out.String())
	}
}

func TestForecastEndToEnd(t *testing.T) {
	menu, out, _ := newTestMenu(t, map[string]string{
		"/data/2.5/forecast?90210,us": `{"city":{"name":"Beverly Hills"},"list":[
			{"dt_txt":"2024-05-01 12:00:00","main":{"temp":70.24,"humidity":40},"weather":[{"description":"few clouds"}]},
			{"dt_txt":"2024-05-01 15:00:00","main":{"temp":71,"humidity":40},"weather":[{"description":"skipped"}]}
		]}`,
	}, "2\n90210\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "Enter ZIP code:\n\n5-Day Forecast for Beverly Hills (90210)\n\nDate: 2024-05-01 12:00:00\nTemperature: 70.2°F\nConditions: few clouds\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output %q", want, out.String())
	}
	if strings.Contains(out.String(), "skipped") {
		t.Error("second 3-hour step must not be rendered")
	}
}

func TestAirQualityEndToEnd(t *testing.T) {
	menu, out, fake := newTestMenu(t, map[string]string{
		"/geo/1.0/zip?10001,us":            `{"zip":"10001","name":"New York","lat":40.7484,"lon":-73.9967,"country":"US"}`,
		"/data/2.5/air_pollution?40.7484": `{"list":[{"main":{"aqi":2},"components":{"pm2_5":8.33,"pm10":12.1}}]}`,
	}, "3\n10001\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "\nAir Quality for New York (10001)\nAir Quality Index: 2\nPM2.5: 8.3 μg/m³\nPM10: 12.1 μg/m³\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output %q", want, out.String())
	}
	if len(fake.paths) != 2 || fake.paths[0] != "/geo/1.0/zip?10001,us" {
		t.Errorf("expected geocode then pollution lookup, got %v", fake.paths)
	}
}

func TestAlertsEndToEnd(t *testing.T) {
	menu, out, _ := newTestMenu(t, map[string]string{
		"/data/2.5/weather?94040,us": mountainView,
	}, "4\n94040\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "\nWeather Alerts for Mountain View (94040)\nNo active weather alerts\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output %q", want, out.String())
	}
}

func TestCompareLocations(t *testing.T) {
	menu, out, fake := newTestMenu(t, map[string]string{
		"/data/2.5/weather?12345,us": `{"main":{"temp":50.04,"humidity":80},"wind":{"speed":3},"weather":[{"description":"mist"}],"name":"Schenectady"}`,
	}, "5\n12345, abcd, 90210\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "Enter ZIP codes (comma-separated):\n" +
		"\nWeather Comparison:\n" +
		"\nSchenectady (12345)\nTemperature: 50.0°F\nConditions: mist\n" +
		"\nabcd: Invalid ZIP code (skipping)\n" +
		"\n90210: Unable to fetch weather data\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output %q", want, out.String())
	}

	wantPaths := []string{"/data/2.5/weather?12345,us", "/data/2.5/weather?90210,us"}
	if strings.Join(fake.paths, " ") != strings.Join(wantPaths, " ") {
		t.Errorf("expected sequential lookups %v, got %v", wantPaths, fake.paths)
	}
}

func TestEndOfInputExits(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"eof after option", "1\n"},
		{"last line without newline", "2\n1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, _, _ := newTestMenu(t, nil, tt.input)
			if err := menu.Run(context.Background()); err != nil {
				t.Fatalf("expected clean exit, got %v", err)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteFailureStopsLoop(t *testing.T) {
	menu := NewMenuController(strings.NewReader("1\n"), failingWriter{}, nil)
	if err := menu.Run(context.Background()); err == nil {
		t.Fatal("expected write error, got nil")
	}
}
