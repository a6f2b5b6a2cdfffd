package config

import (
	"errors"
	"strings"
	"time"
)

// fileConfig mirrors the section layout of the INI file.
type fileConfig struct {
	Configuration Config `mapstructure:"configuration"`
}

// Config carries the [configuration] section of the INI file.
type Config struct {
	GitHubAPIToken string        `mapstructure:"github_api_token"`
	GitHubOrg      string        `mapstructure:"github_org"`
	HTMLHeader     string        `mapstructure:"html_header"`
	OutputDir      string        `mapstructure:"output_dir"`
	Timezone       string        `mapstructure:"timezone"`
	GraphQLURL     string        `mapstructure:"graphql_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.GitHubAPIToken == "" {
		return errors.New("configuration.github_api_token is required")
	}
	if len(c.Organizations()) == 0 {
		return errors.New("configuration.github_org is required")
	}
	if c.HTMLHeader == "" {
		return errors.New("configuration.html_header is required")
	}
	return nil
}

// Organizations splits the github_org value into trimmed, non-empty names.
func (c Config) Organizations() []string {
	parts := strings.Split(c.GitHubOrg, ",")
	orgs := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			orgs = append(orgs, name)
		}
	}

	return orgs
}
