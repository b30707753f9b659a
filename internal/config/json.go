// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings in Go
// duration syntax (e.g. "30s", "12h") as well as from bare nanosecond
// numbers.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type. It exists so that the JSON file format
// stays decoupled from the env/flag representation.
type StructuredJSONConfig struct {
	App struct {
		MaxNoteSize int    `json:"max_note_size"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		Files struct {
			NotesDir string `json:"notes_dir"`
		} `json:"files,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Cache struct {
		TTL Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Expiry struct {
		CheckPeriod Duration `json:"check_period"`
	} `json:"expiry,omitempty"`

	RateLimit struct {
		Window              Duration `json:"window"`
		MaxRequests         int      `json:"max_requests"`
		PasswordMaxRequests int      `json:"password_max_requests"`
	} `json:"rate_limit,omitempty"`
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
			MaxNoteSize: jsonCfg.App.MaxNoteSize,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Files: Files{
				NotesDir: jsonCfg.Storage.Files.NotesDir,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Cache: Cache{
			TTL: time.Duration(jsonCfg.Cache.TTL),
		},
		Expiry: Expiry{
			CheckPeriod: time.Duration(jsonCfg.Expiry.CheckPeriod),
		},
		RateLimit: RateLimit{
			Window:              time.Duration(jsonCfg.RateLimit.Window),
			MaxRequests:         jsonCfg.RateLimit.MaxRequests,
			PasswordMaxRequests: jsonCfg.RateLimit.PasswordMaxRequests,
		},
	}

	return cfg, nil
}
