// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/migrations"
)

// Goose dialect names for the supported SQL drivers.
const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB wraps an open SQL connection together with its dialect so that the
// note repository can pick placeholder formats and migrations accordingly.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
