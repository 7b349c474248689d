// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source.
const (
	DefaultAPIBaseURL       = "https://api.themoviedb.org/3"
	DefaultImageBaseURL     = "https://image.tmdb.org/t/p/w500"
	DefaultAuthSiteURL      = "https://www.themoviedb.org"
	DefaultRedirectScheme   = "themoviemanager"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultCompletionBuffer = 64
	DefaultStubAddress      = "localhost:8088"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the API key, the deep-link
	// scheme and logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoints and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the settings of the local API stub.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the completion queue settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey is the key sent as api_key with every remote call. The stub
	// accepts only this key.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// RedirectScheme is the deep-link scheme the web authentication page
	// redirects back to ("<scheme>:authenticate").
	// Env: APP_REDIRECT_SCHEME
	RedirectScheme string `env:"REDIRECT_SCHEME"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the interactive client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the remote endpoints.
type Adapter struct {
	// Env: ADAPTER_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// Env: ADAPTER_IMAGE_BASE_URL
	ImageBaseURL string `env:"IMAGE_BASE_URL"`

	// Env: ADAPTER_AUTH_SITE_URL
	AuthSiteURL string `env:"AUTH_SITE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the settings of the local API stub.
type Server struct {
	// HTTPAddress is the "host:port" the stub listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// StubUsername and StubPassword are the credentials of the single
	// account the stub is seeded with.
	// Env: SERVER_STUB_USERNAME, SERVER_STUB_PASSWORD
	StubUsername string `env:"STUB_USERNAME"`
	StubPassword string `env:"STUB_PASSWORD"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// CompletionBuffer is the capacity of the completion queue.
	// Env: WORKERS_COMPLETION_BUFFER
	CompletionBuffer int `env:"COMPLETION_BUFFER"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RedirectScheme: DefaultRedirectScheme,
			LogLevel:       "info",
		},
		Adapter: Adapter{
			APIBaseURL:     DefaultAPIBaseURL,
			ImageBaseURL:   DefaultImageBaseURL,
			AuthSiteURL:    DefaultAuthSiteURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress: DefaultStubAddress,
		},
		Workers: Workers{
			CompletionBuffer: DefaultCompletionBuffer,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// It also returns the positional arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.args, nil
}
