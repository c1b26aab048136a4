package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the CLI settings. Flags override environment values.
type Config struct {
	APIURL    string `env:"IMS_API_URL,    default=http://localhost:8080"`
	ConfigDir string `env:"IMS_CONFIG_DIR"`
}

// Load reads CLI configuration from environment variables.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
