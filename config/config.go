// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// NewConfig loads the INI file at path using viper with typed defaults and
// validation. A .env file in the working directory seeds environment
// variables, and environment variables override file values.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := fc.Configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("configuration.output_dir", "Reports")
	v.SetDefault("configuration.timezone", "US/Eastern")
	v.SetDefault("configuration.graphql_url", "https://api.github.com/graphql")
	v.SetDefault("configuration.request_timeout", 30*time.Second)
	v.SetDefault("configuration.log_level", "info")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"configuration.github_api_token",
		"configuration.github_org",
		"configuration.html_header",
		"configuration.output_dir",
		"configuration.timezone",
		"configuration.graphql_url",
		"configuration.request_timeout",
		"configuration.log_level",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
