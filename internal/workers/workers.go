// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewExpiryWorker(services.ExpiryService, cfg.Expiry, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
