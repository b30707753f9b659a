// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
)

// expiryWorker periodically runs the expiry sweep over all stored notes.
type expiryWorker struct {
	expiry service.ExpiryService
	period time.Duration
	logger *logger.Logger
}

func NewExpiryWorker(expiry service.ExpiryService, cfg config.Expiry, logger *logger.Logger) Worker {
	return &expiryWorker{
		expiry: expiry,
		period: cfg.CheckPeriod,
		logger: logger,
	}
}

// Run starts the sweep loop in its own goroutine. One sweep runs
// immediately so a restart never postpones retention by a full period.
func (w *expiryWorker) Run(ctx context.Context) {
	go func() {
		w.sweep(ctx)

		ticker := time.NewTicker(w.period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("expiry worker stopped")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *expiryWorker) sweep(ctx context.Context) {
	purged, err := w.expiry.Sweep(ctx)
	if err != nil {
		w.logger.Err(err).Msg("expiry sweep failed")
		return
	}

	if len(purged) > 0 {
		w.logger.Info().Int("purged", len(purged)).Msg("expiry sweep completed")
	}
}
