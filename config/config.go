package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "http://localhost:5135/api"
	defaultTimeout = 30 * time.Second
)

type AppConfig struct {
	API APIConfig `mapstructure:"api"`
}

type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CredentialFile string        `mapstructure:"credential_file"`
	Environment    string        `mapstructure:"environment"`
}

// Load reads the config file at path, applying CSIC_* environment overrides
// on top. An empty path skips the file and uses defaults plus environment.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.timeout", defaultTimeout)
	v.SetDefault("api.credential_file", "")
	v.SetDefault("api.environment", "production")

	v.SetEnvPrefix("CSIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return &conf, nil
}

func Default() *AppConfig {
	return &AppConfig{
		API: APIConfig{
			BaseURL:     defaultBaseURL,
			Timeout:     defaultTimeout,
			Environment: "production",
		},
	}
}
