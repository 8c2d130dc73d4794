package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	payload := `logger:
  level: debug
http_client:
  retry_count: 3
  timeout: 5000000000
scanner:
  threads: 8
  exclude_dirs:
    - generated
github:
  api_base_url: https://api.github.com
  request_delay: 2000000000
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 3, cfg.HTTPClient.RetryCount)
	assert.Equal(t, 5*time.Second, cfg.HTTPClient.Timeout)
	assert.Equal(t, 8, cfg.Scanner.Threads)
	assert.Equal(t, []string{"generated"}, cfg.Scanner.ExcludeDirs)
	assert.Equal(t, 2*time.Second, cfg.GitHub.RequestDelay)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	var tests = []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative retry count", func(c *Config) { c.HTTPClient.RetryCount = -1 }},
		{"excessive retry count", func(c *Config) { c.HTTPClient.RetryCount = 21 }},
		{"excessive timeout", func(c *Config) { c.HTTPClient.Timeout = 101 * time.Second }},
		{"negative threads", func(c *Config) { c.Scanner.Threads = -1 }},
		{"negative max repos", func(c *Config) { c.Scanner.MaxRepos = -2 }},
		{"excessive request delay", func(c *Config) { c.GitHub.RequestDelay = 61 * time.Second }},
		{"bad proxy port", func(c *Config) {
			c.HTTPClient.Proxy.Host = "proxy.local"
			c.HTTPClient.Proxy.Port = 70000
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, 4, SetThen(0, 4))
	assert.Equal(t, 7, SetThen(7, 4))
	assert.Equal(t, "fallback", SetThen("", "fallback"))
	assert.Equal(t, time.Second, SetThen(time.Duration(0), time.Second))
}

func TestGetBoolValue(t *testing.T) {
	verify := false
	httpConfig := HTTPClient{TLSClientConfig: TLSClientConfig{Verify: &verify}}

	assert.False(t, GetBoolValue(httpConfig.TLSClientConfig, "Verify", true))
	assert.True(t, GetBoolValue(HTTPClient{}.TLSClientConfig, "Verify", true))
	assert.True(t, GetBoolValue(nil, "Verify", true))
}
