package config

import "fmt"

// ServerApp holds the settings of the stub shared with the client.
type ServerApp struct {
	// APIKey is the only api_key value the stub accepts.
	APIKey   string
	LogLevel string
}

// StubServer holds the listen address and the seeded account.
type StubServer struct {
	HTTPAddress  string
	StubUsername string
	StubPassword string
}

// ServerConfig is the configuration view used by the local API stub.
type ServerConfig struct {
	App    ServerApp
	Server StubServer
}

// GetServerConfig builds and validates the stub server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			APIKey:   cfg.App.APIKey,
			LogLevel: cfg.App.LogLevel,
		},
		Server: StubServer{
			HTTPAddress:  cfg.Server.HTTPAddress,
			StubUsername: cfg.Server.StubUsername,
			StubPassword: cfg.Server.StubPassword,
		},
	}

	return serverCfg, serverCfg.validate()
}
