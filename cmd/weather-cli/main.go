package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"go.uber.org/zap"

	_ "weather-cli/configs"
	"weather-cli/internal/application/controller"
	"weather-cli/internal/domain/gateway/api"
	"weather-cli/internal/domain/usecase/weather"
	"weather-cli/pkg/http"
	"weather-cli/pkg/log"
	"weather-cli/pkg/msg"
	"weather-cli/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	baseURL := resource.GetString("openweather.base-url")
	settings, err := gatewaySettings(baseURL)
	if err != nil {
		log.Fatal(msg.GetMessage("app.invalid-config", err.Error()), zap.Error(err))
	}

	clientOptions := http.ClientOptions{
		MaxIdleConns:         resource.GetInt("http.max-idle-conns"),
		MaxIdleConnsPerHost:  resource.GetInt("http.max-idle-conns-per-host"),
		IdleConnTimeout:      resource.GetDuration("http.idle-conn-timeout"),
		ConnectionTimeout:    resource.GetDuration("http.connection-timeout"),
		ReadTimeout:          resource.GetDuration("http.read-timeout"),
		SensitiveQueryParams: []string{"appid"},
		Logger:               http.NewZapHTTPLogger(),
	}

	httpClient := http.NewHttpClient(baseURL, clientOptions)

	// Init Gateway and UseCase
	weatherGateway := api.NewWeatherGateway(httpClient, settings)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)

	// Init Controller
	menuController := controller.NewMenuController(os.Stdin, os.Stdout, weatherUseCase)

	err = menuController.Run(context.Background())
	httpClient.CloseIdleConnections()
	if err != nil {
		log.Fatal(msg.GetMessage("app.menu-fail", err.Error()), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

// gatewaySettings reads the OpenWeatherMap settings and checks the ones the
// client cannot start without.
func gatewaySettings(baseURL string) (api.Settings, error) {
	settings := api.Settings{
		APIKey:  resource.GetString("openweather.api-key"),
		Units:   resource.GetString("openweather.units"),
		Country: resource.GetString("openweather.country"),
	}

	if settings.APIKey == "" {
		return settings, errors.New(msg.GetMessage("app.missing-api-key"))
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return settings, fmt.Errorf("invalid openweather.base-url %q", baseURL)
	}
	return settings, nil
}
