package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags so that a
// configuration file can use readable snake_case keys and human duration
// strings ("30s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Environment   string `json:"environment"`
		SessionSecret string `json:"session_secret"`
		CookieName    string `json:"cookie_name"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Users struct {
			File string `json:"file"`
		} `json:"users,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			Environment:   jsonCfg.App.Environment,
			SessionSecret: jsonCfg.App.SessionSecret,
			CookieName:    jsonCfg.App.CookieName,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			Users: Users{
				File: jsonCfg.Storage.Users.File,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
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
