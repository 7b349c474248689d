// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.App.APIKey == "" || cfg.App.RedirectScheme == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.APIBaseURL == "" || cfg.Adapter.ImageBaseURL == "" ||
		cfg.Adapter.AuthSiteURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.CompletionBuffer < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.StubUsername == "" || cfg.Server.StubPassword == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
