package main

import (
	"os"
	"testing"

	"weather-cli/pkg/msg"
)

func TestGatewaySettingsRequiresAPIKey(t *testing.T) {
	if _, ok := os.LookupEnv("OPENWEATHER_API_KEY"); ok {
		t.Skip("OPENWEATHER_API_KEY is set in the environment")
	}

	_, err := gatewaySettings("http://api.openweathermap.org")
	if err == nil {
		t.Fatal("expected missing api key error, got nil")
	}
	if want := msg.GetMessage("app.missing-api-key"); err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
