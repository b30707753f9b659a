// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// sqlNoteStorage is the SQL-backed implementation of [NoteStorage], shared
// by the SQLite and Postgres backends. Records are stored serialized as
// JSON in a single "record" column, keeping the persisted layout identical
// across all backends; the "version" column duplicates the record's version
// for the optimistic-locking check on UPDATE.
type sqlNoteStorage struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLNoteStorage constructs a [NoteStorage] over an open [*DB]
// connection.
func NewSQLNoteStorage(db *DB, logger *logger.Logger) NoteStorage {
	return &sqlNoteStorage{
		DB:      db,
		builder: builderFor(db.dialect),
		logger:  logger,
	}
}

// Get implements [NoteStorage].
func (s *sqlNoteStorage) Get(ctx context.Context, id string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(s.builder, id)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.Get").Str("note_id", id).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		log.Err(err).Str("func", "sqlNoteStorage.Get").Str("note_id", id).Msg("failed to scan note row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var note models.Note
	if err := json.Unmarshal([]byte(record), &note); err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.Get").Str("note_id", id).Msg("failed to unmarshal note record")
		return nil, fmt.Errorf("%w: %w", ErrReadingNote, err)
	}

	return &note, nil
}

// Put implements [NoteStorage]. A record at version 1 is inserted; any
// later version updates the stored row only if its version is exactly one
// behind. Both a racing insert (unique violation) and a stale update (zero
// affected rows) surface as [ErrVersionConflict].
func (s *sqlNoteStorage) Put(ctx context.Context, id string, note *models.Note) error {
	log := logger.FromContext(ctx)

	record, err := json.Marshal(note)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.Put").Str("note_id", id).Msg("failed to marshal note record")
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}

	if note.Version <= 1 {
		return s.insert(ctx, id, string(record), note.Version)
	}

	return s.update(ctx, id, string(record), note.Version)
}

func (s *sqlNoteStorage) insert(ctx context.Context, id, record string, version int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(s.builder, id, record, version)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) || isSQLiteConstraint(err) {
			return ErrVersionConflict
		}
		log.Err(err).Str("func", "sqlNoteStorage.insert").Str("note_id", id).Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlNoteStorage) update(ctx context.Context, id, record string, version int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(s.builder, id, record, version, version-1)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.update").Str("note_id", id).Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// Delete implements [NoteStorage].
func (s *sqlNoteStorage) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(s.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.Delete").Str("note_id", id).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListIDs implements [NoteStorage].
func (s *sqlNoteStorage) ListIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNoteIDsQuery(s.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStorage.ListIDs").Msg("failed to list note ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 50)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListingNotes, err)
	}

	return ids, nil
}
