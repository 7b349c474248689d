package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		APIKey         string `json:"api_key"`
		RedirectScheme string `json:"redirect_scheme"`
		LogLevel       string `json:"log_level"`
		LogFile        string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIBaseURL     string   `json:"api_base_url"`
		ImageBaseURL   string   `json:"image_base_url"`
		AuthSiteURL    string   `json:"auth_site_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress  string `json:"http_address"`
		StubUsername string `json:"stub_username"`
		StubPassword string `json:"stub_password"`
	} `json:"server,omitempty"`

	Workers struct {
		CompletionBuffer int `json:"completion_buffer"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:         jsonCfg.App.APIKey,
			RedirectScheme: jsonCfg.App.RedirectScheme,
			LogLevel:       jsonCfg.App.LogLevel,
			LogFile:        jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			APIBaseURL:     jsonCfg.Adapter.APIBaseURL,
			ImageBaseURL:   jsonCfg.Adapter.ImageBaseURL,
			AuthSiteURL:    jsonCfg.Adapter.AuthSiteURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:  jsonCfg.Server.HTTPAddress,
			StubUsername: jsonCfg.Server.StubUsername,
			StubPassword: jsonCfg.Server.StubPassword,
		},
		Workers: Workers{
			CompletionBuffer: jsonCfg.Workers.CompletionBuffer,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
