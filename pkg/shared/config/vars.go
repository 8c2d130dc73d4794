package config

import (
	"time"
)

type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Scanner    Scanner    `yaml:"scanner"`
	GitHub     GitHub     `yaml:"github"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Scanner holds the defaults for the repository scan pipeline.
// Command-line flags take precedence over these values.
type Scanner struct {
	Threads     int      `yaml:"threads"`
	MaxRepos    int      `yaml:"max_repos"`
	CacheMaxAge int      `yaml:"cache_max_age"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// GitHub holds settings for the GitHub API enrichment client.
// The token may also be supplied via the GITHUB_TOKEN environment variable,
// which takes precedence over the config file.
type GitHub struct {
	Token        string        `yaml:"token"`
	APIBaseURL   string        `yaml:"api_base_url"`
	RequestDelay time.Duration `yaml:"request_delay"`
}
