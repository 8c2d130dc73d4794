package config

import (
	"crypto/tls"
	"time"
)

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Timeout          time.Duration
	TLSClientConfig  *tls.Config
	Proxy            string
}

// RestyHTTPClientConfig holds additional configuration settings for the resty http client.
type RestyHTTPClientConfig struct {
	BaseHTTPConfig
	Debug bool
}

// General base configuration applicable to all HTTP clients.
func DefaultHTTPConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		RetryCount:       5,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 2 * time.Second,
		Timeout:          10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12, // Enforce a minimum TLS version
		},
		Proxy: "",
	}
}

// DefaultRestyConfig function returns a specific http config to Resty.
func DefaultRestyConfig() RestyHTTPClientConfig {
	baseConfig := DefaultHTTPConfig()
	return RestyHTTPClientConfig{
		BaseHTTPConfig: baseConfig,
		Debug:          false,
	}
}

// DefaultScannerConfig returns the scanner defaults applied when the config
// file leaves the scanner directive empty.
func DefaultScannerConfig() Scanner {
	return Scanner{
		Threads:     4,
		MaxRepos:    0,
		CacheMaxAge: 0,
		ExcludeDirs: nil,
	}
}

// DefaultGitHubConfig returns the defaults for the GitHub enrichment client.
func DefaultGitHubConfig() GitHub {
	return GitHub{
		APIBaseURL:   "https://api.github.com",
		RequestDelay: 1 * time.Second,
	}
}
