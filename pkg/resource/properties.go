package resource

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// Load reads YAML properties from r, replacing anything loaded before.
func Load(r io.Reader) error {
	properties.SetConfigType("yml")
	if err := properties.ReadConfig(r); err != nil {
		return fmt.Errorf("failed to read properties: %w", err)
	}
	resolvePlaceholders()
	return nil
}

// Init merges the YAML file at filepath over the properties already loaded.
func Init(filepath string) {
	properties.SetConfigFile(filepath)
	properties.SetConfigType("yml")

	if err := properties.MergeInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	resolvePlaceholders()
}

func resolvePlaceholders() {
	resolved := make(map[string]any)
	parsePropertiesMap("", properties.AllSettings(), resolved)

	for key, value := range resolved {
		properties.Set(key, value)
	}
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value. Plain values are returned untouched,
// an unset variable without default resolves to "".
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}
