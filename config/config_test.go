package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `[configuration]
github_api_token = tkn
github_org = acme
HTML_HEADER = SAML Users for
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, "tkn", cfg.GitHubAPIToken)
	require.Equal(t, []string{"acme"}, cfg.Organizations())
	require.Equal(t, "SAML Users for", cfg.HTMLHeader)
	require.Equal(t, "Reports", cfg.OutputDir)
	require.Equal(t, "US/Eastern", cfg.Timezone)
	require.Equal(t, "https://api.github.com/graphql", cfg.GraphQLURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfigOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `[configuration]
github_api_token = tkn
github_org = acme, beta , , gamma
HTML_HEADER = Linked accounts of
output_dir = out
timezone = UTC
graphql_url = https://ghe.example.com/api/graphql
request_timeout = 45s
log_level = debug
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"acme", "beta", "gamma"}, cfg.Organizations())
	require.Equal(t, "Linked accounts of", cfg.HTMLHeader)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, "UTC", cfg.Timezone)
	require.Equal(t, "https://ghe.example.com/api/graphql", cfg.GraphQLURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfigEnvOverride(t *testing.T) {
	t.Setenv("CONFIGURATION_GITHUB_API_TOKEN", "env-token")
	t.Setenv("CONFIGURATION_OUTPUT_DIR", "env-out")

	path := writeConfigFile(t, `[configuration]
github_api_token = file-token
github_org = acme
HTML_HEADER = SAML Users for
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, "env-token", cfg.GitHubAPIToken)
	require.Equal(t, "env-out", cfg.OutputDir)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing_token",
			content: `[configuration]
github_org = acme
HTML_HEADER = SAML Users for
`,
		},
		{
			name: "missing_org",
			content: `[configuration]
github_api_token = tkn
HTML_HEADER = SAML Users for
`,
		},
		{
			name: "blank_org",
			content: `[configuration]
github_api_token = tkn
github_org = , ,
HTML_HEADER = SAML Users for
`,
		},
		{
			name: "missing_header",
			content: `[configuration]
github_api_token = tkn
github_org = acme
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfigFile(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestConfigOrganizations(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single", "acme", []string{"acme"}},
		{"multiple_with_spaces", " acme , beta-labs ,gamma", []string{"acme", "beta-labs", "gamma"}},
		{"empty_pieces", "acme,,", []string{"acme"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{GitHubOrg: tt.raw}
			require.Equal(t, tt.expected, cfg.Organizations())
		})
	}
}
