package configs

import (
	"os"
	"testing"
)

func TestDefaultLogLevel(t *testing.T) {
	for _, name := range []string{"LOG_LEVEL", "PROPERTIES_FILE_PATH"} {
		if _, ok := os.LookupEnv(name); ok {
			t.Skipf("%s is set in the environment", name)
		}
	}

	if Env.LogLevel != "error" {
		t.Errorf("expected default log level error, got %q", Env.LogLevel)
	}
}

func TestApplicationName(t *testing.T) {
	if _, ok := os.LookupEnv("APPLICATION_NAME"); ok {
		t.Skip("APPLICATION_NAME is set in the environment")
	}

	if Env.ApplicationName != "weather-cli" {
		t.Errorf("expected application name weather-cli, got %q", Env.ApplicationName)
	}
}
