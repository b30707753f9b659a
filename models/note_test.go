// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NoteContent JSON polymorphism
// ─────────────────────────────────────────────

func TestNoteContent_UnmarshalJSON_String(t *testing.T) {
	var c NoteContent
	require.NoError(t, json.Unmarshal([]byte(`"plain text"`), &c))

	assert.False(t, c.Encrypted())
	assert.Equal(t, "plain text", c.Plaintext)
}

func TestNoteContent_UnmarshalJSON_EncryptedBlob(t *testing.T) {
	raw := `{"encrypted":true,"alg":"aes-256-gcm","kdf":"pbkdf2-sha256","iterations":100000,"salt":"c2FsdA==","iv":"aXY=","data":"ZGF0YQ=="}`

	var c NoteContent
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	require.True(t, c.Encrypted())
	assert.Equal(t, AlgAESGCM, c.Blob.Alg)
	assert.Equal(t, KDFPBKDF2SHA256, c.Blob.KDF)
	assert.Equal(t, 100_000, c.Blob.Iterations)
}

func TestNoteContent_UnmarshalJSON_LegacyBlobWithoutTags(t *testing.T) {
	// Blobs written before algorithm tagging carry only the marker and the
	// three payload fields.
	raw := `{"encrypted":true,"salt":"c2FsdA==","iv":"aXY=","data":"ZGF0YQ=="}`

	var c NoteContent
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	require.True(t, c.Encrypted())
	assert.Empty(t, c.Blob.Alg)
	assert.Zero(t, c.Blob.Iterations)
}

func TestNoteContent_UnmarshalJSON_ObjectWithoutMarkerRejected(t *testing.T) {
	var c NoteContent
	err := json.Unmarshal([]byte(`{"salt":"c2FsdA=="}`), &c)

	require.ErrorIs(t, err, ErrMalformedContent)
}

func TestNoteContent_UnmarshalJSON_OtherTypesRejected(t *testing.T) {
	for _, raw := range []string{`42`, `true`, `[1,2]`, `null`} {
		var c NoteContent
		err := json.Unmarshal([]byte(raw), &c)
		require.ErrorIs(t, err, ErrMalformedContent, "input %s", raw)
	}
}

func TestNoteContent_MarshalJSON_RoundTrip(t *testing.T) {
	original := Note{
		Content:        PlainNoteContent("hello"),
		CreatedAt:      1_700_000_000_000,
		LastAccessedAt: 1_700_000_000_000,
		ExpireDays:     ExpireDays7,
		Version:        3,
	}

	raw, err := json.Marshal(&original)
	require.NoError(t, err)

	var decoded Note
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestNote_MarshalJSON_UnprotectedOmitsPasswordHash(t *testing.T) {
	raw, err := json.Marshal(&Note{Content: PlainNoteContent("x")})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "passwordHash")
}

// ─────────────────────────────────────────────
// Protected / Expired / Clone
// ─────────────────────────────────────────────

func TestNote_Protected(t *testing.T) {
	assert.False(t, (&Note{}).Protected())
	assert.True(t, (&Note{PasswordHash: "$2a$10$abc"}).Protected())
}

func TestNote_Expired(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	note := &Note{
		LastAccessedAt: base.UnixMilli(),
		ExpireDays:     ExpireDays3,
	}

	window := time.Duration(ExpireDays3) * 24 * time.Hour

	assert.False(t, note.Expired(base))
	assert.False(t, note.Expired(base.Add(window)), "the boundary instant is not yet expired")
	assert.True(t, note.Expired(base.Add(window+time.Millisecond)))
}

func TestNote_Expired_LegacyRecordWithoutTimestampsNeverExpires(t *testing.T) {
	assert.False(t, (&Note{ExpireDays: ExpireDays3}).Expired(time.Now()))
	assert.False(t, (&Note{LastAccessedAt: 1}).Expired(time.Now()))
}

func TestNote_Clone_DoesNotAliasBlob(t *testing.T) {
	original := &Note{
		Content: EncryptedNoteContent(&EncryptedBlob{
			Encrypted: true,
			Salt:      "c2FsdA==",
			IV:        "aXY=",
			Data:      "ZGF0YQ==",
		}),
	}

	clone := original.Clone()
	clone.Content.Blob.Data = "changed"

	assert.Equal(t, "ZGF0YQ==", original.Content.Blob.Data)
}
