// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-b storage backend: file, sqlite or postgres
//	-n notes directory for the file backend
//	-d database DSN for the sqlite/postgres backends
//	-c/-config json file path with configs
//	-max-note-size maximum note content size in bytes
//	-cache-ttl record cache TTL (e.g., "10m")
//	-expiry-check-period interval between expiry sweeps (e.g., "12h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var storageBackend string
	var notesDir string
	var databaseDSN string
	var jsonConfigPath string
	var maxNoteSize int
	var cacheTTL time.Duration
	var expiryCheckPeriod time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&storageBackend, "b", "", "Storage backend: file, sqlite or postgres")
	flag.StringVar(&notesDir, "n", "", "Notes directory (file backend)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN (sqlite/postgres backend)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&maxNoteSize, "max-note-size", 0, "Maximum note content size in bytes")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Record cache TTL (e.g., 10m)")
	flag.DurationVar(&expiryCheckPeriod, "expiry-check-period", 0, "Interval between expiry sweeps (e.g., 12h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MaxNoteSize: maxNoteSize,
		},
		Storage: Storage{
			Backend: storageBackend,
			Files: Files{
				NotesDir: notesDir,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			TTL: cacheTTL,
		},
		Expiry: Expiry{
			CheckPeriod: expiryCheckPeriod,
		},
		JSONFilePath: jsonConfigPath,
	}
}
