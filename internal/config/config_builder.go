// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges all collected configs in append order. mergo never overrides
// an already populated field, so earlier sources win: env, then flags, then
// the JSON file, then defaults.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// defaultConfig carries the historical defaults of the service: port 8888,
// 100 KB notes, 10 minute cache, 12 hour sweep, 100 requests (5 on the
// password endpoint) per 15 minutes and IP.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxNoteSize: 100_000,
		},
		Storage: Storage{
			Backend: BackendFile,
			Files: Files{
				NotesDir: "notes",
			},
		},
		Server: Server{
			HTTPAddress:    ":8888",
			RequestTimeout: 30 * time.Second,
		},
		Cache: Cache{
			TTL: 10 * time.Minute,
		},
		Expiry: Expiry{
			CheckPeriod: 12 * time.Hour,
		},
		RateLimit: RateLimit{
			Window:              15 * time.Minute,
			MaxRequests:         100,
			PasswordMaxRequests: 5,
		},
	}
}
