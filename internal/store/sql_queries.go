// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// builderFor returns a squirrel statement builder configured with the
// placeholder format of the given dialect: "$1, $2, ..." for Postgres and
// "?" for SQLite.
func builderFor(dialect string) sq.StatementBuilderType {
	if dialect == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildGetNoteQuery(builder sq.StatementBuilderType, id string) (string, []any, error) {
	return builder.
		Select("record").
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNoteQuery(builder sq.StatementBuilderType, id, record string, version int64) (string, []any, error) {
	return builder.
		Insert("notes").
		Columns("id", "record", "version").
		Values(id, record, version).
		ToSql()
}

// buildUpdateNoteQuery updates the record only when the stored version
// still matches expectedVersion; zero affected rows signals a lost-update
// race to the caller.
func buildUpdateNoteQuery(builder sq.StatementBuilderType, id, record string, version, expectedVersion int64) (string, []any, error) {
	return builder.
		Update("notes").
		Set("record", record).
		Set("version", version).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		ToSql()
}

func buildDeleteNoteQuery(builder sq.StatementBuilderType, id string) (string, []any, error) {
	return builder.
		Delete("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListNoteIDsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.
		Select("id").
		From("notes").
		OrderBy("id").
		ToSql()
}
