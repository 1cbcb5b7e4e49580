package configs

import (
	"bytes"
	_ "embed"
	stdlog "log"
	"os"

	"weather-cli/pkg/log"
	"weather-cli/pkg/msg"
	"weather-cli/pkg/resource"
)

//go:embed application.yml
var applicationProperties []byte

//go:embed messages.yml
var applicationMessages []byte

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	loadProperties()
	loadMessages()

	Env = &EnvConfig{
		ApplicationName: resource.GetString("app.name"),
		LogLevel:        resource.GetString("log.level"),
	}
	log.Configure(Env.ApplicationName, Env.LogLevel)
}

// loadProperties reads the bundled application.yml, then merges PROPERTIES_FILE_PATH over it.
func loadProperties() {
	if err := resource.Load(bytes.NewReader(applicationProperties)); err != nil {
		stdlog.Fatalf("Fail to load bundled properties: %v", err)
	}
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		resource.Init(path)
	}
}

// loadMessages reads the bundled messages.yml, then merges MESSAGES_FILE_PATH over it.
func loadMessages() {
	if err := msg.Load(bytes.NewReader(applicationMessages)); err != nil {
		stdlog.Fatalf("Fail to load bundled messages: %v", err)
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		msg.Init(path)
	}
}
