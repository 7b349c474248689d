package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// APIKey is sent as the api_key query parameter with every request.
	APIKey string
	// RedirectScheme is the deep-link scheme used in the web-auth URL.
	RedirectScheme string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientAdapter holds the remote endpoints used by the client transport layer.
type ClientAdapter struct {
	APIBaseURL   string
	ImageBaseURL string
	AuthSiteURL  string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CompletionBuffer is the capacity of the callback completion queue.
	CompletionBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
	// Args are the positional arguments left after flag parsing. A non-empty
	// Args runs a single command instead of the interactive loop.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIKey:         cfg.App.APIKey,
			RedirectScheme: cfg.App.RedirectScheme,
			LogLevel:       cfg.App.LogLevel,
			LogFile:        cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			APIBaseURL:     cfg.Adapter.APIBaseURL,
			ImageBaseURL:   cfg.Adapter.ImageBaseURL,
			AuthSiteURL:    cfg.Adapter.AuthSiteURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{CompletionBuffer: cfg.Workers.CompletionBuffer},
		Args:    rest,
	}

	return clientCfg, clientCfg.validate()
}
