package cli

import (
	"os"
	"strconv"

	"github.com/mcoot/wordsearch-go/internal/factory"
	"github.com/mcoot/wordsearch-go/internal/services/config"
)

// Config holds CLI configuration
type Config struct {
	ConfigPath     string
	StorageType    string
	RedisURL       string
	DictionaryPath string
	Output         string
	Verbose        bool
	NoColor        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath:     getEnvOrDefault("WSGAME_CONFIG", config.DefaultPath()),
		StorageType:    getEnvOrDefault("WSGAME_STORAGE", factory.StorageTypeMemory),
		RedisURL:       getEnvOrDefault("WSGAME_REDIS_URL", "redis://localhost:6379"),
		DictionaryPath: os.Getenv("WSGAME_DICTIONARY"),
		Output:         "text",
		Verbose:        false,
		NoColor:        getEnvBool("NO_COLOR"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		// NO_COLOR is set-means-true
		return true
	}
	return b
}
