// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across go-note-vault. The Logger type embeds
// zerolog.Logger, so the full zerolog API is available on *Logger.
package logger

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levelEnvVar overrides the log level at startup ("debug", "info",
// "warn", ...). It is read from the environment rather than the config
// file because the logger has to exist before configuration is loaded.
const levelEnvVar = "LOG_LEVEL"

// Logger embeds zerolog.Logger so helper methods can be added without
// touching the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide JSON logger writing to stdout. Every
// entry carries a "role" field for the given component label, a timestamp
// and the calling location. The level defaults to info and can be raised
// or lowered via the LOG_LEVEL environment variable; an unparseable value
// is ignored.
func NewLogger(role string) *Logger {
	level := zerolog.InfoLevel
	if raw := strings.TrimSpace(os.Getenv(levelEnvVar)); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	l := zerolog.New(os.Stdout).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to the request
// context by middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none has been
// attached, zerolog hands back its global logger, so the result is never
// nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
