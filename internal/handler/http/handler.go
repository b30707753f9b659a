// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
)

// noteBodySlackBytes is the allowance on top of the configured note size
// for the JSON envelope around the content field.
const noteBodySlackBytes = 1 << 10

// controlBodyLimitBytes caps the password and expiry request bodies, which
// only ever carry a few short fields.
const controlBodyLimitBytes = 4 << 10

type Handler struct {
	services *service.Services

	generalLimiter  *rateLimiter
	passwordLimiter *rateLimiter

	// noteBodyLimitBytes bounds how much of a save-note body is read off
	// the wire before validation sees it.
	noteBodyLimitBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		generalLimiter:     newRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests),
		passwordLimiter:    newRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.PasswordMaxRequests),
		noteBodyLimitBytes: int64(cfg.App.MaxNoteSize) + noteBodySlackBytes,
		logger:             logger,
	}
}
