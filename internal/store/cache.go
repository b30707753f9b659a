// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// noteCache is a time-bounded in-memory map of note records. It is an
// explicitly constructed component with an injected clock, not a package
// singleton, so tests drive expiry deterministically.
type noteCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	note     *models.Note
	storedAt time.Time
}

func newNoteCache(ttl time.Duration, now func() time.Time) *noteCache {
	return &noteCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *noteCache) get(id string) (*models.Note, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.delete(id)
		return nil, false
	}

	return entry.note.Clone(), true
}

func (c *noteCache) set(id string, note *models.Note) {
	c.mu.Lock()
	c.entries[id] = cacheEntry{note: note.Clone(), storedAt: c.now()}
	c.mu.Unlock()
}

func (c *noteCache) delete(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// cachedNoteStorage decorates a [NoteStorage] with a read-through,
// write-through [noteCache]. The durable store stays the single source of
// truth: the cache is updated synchronously on every successful write and
// invalidated on every deletion and on every failed write, so readers never
// observe content older than the last committed write for an ID.
type cachedNoteStorage struct {
	inner  NoteStorage
	cache  *noteCache
	logger *logger.Logger
}

// NewCachedNoteStorage wraps inner with an in-memory record cache. The now
// function is the cache's clock; pass [time.Now] outside tests.
func NewCachedNoteStorage(inner NoteStorage, ttl time.Duration, now func() time.Time, logger *logger.Logger) NoteStorage {
	logger.Debug().Dur("ttl", ttl).Msg("note record cache enabled")

	return &cachedNoteStorage{
		inner:  inner,
		cache:  newNoteCache(ttl, now),
		logger: logger,
	}
}

// Get implements [NoteStorage].
func (c *cachedNoteStorage) Get(ctx context.Context, id string) (*models.Note, error) {
	if note, ok := c.cache.get(id); ok {
		return note, nil
	}

	note, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.set(id, note)
	return note, nil
}

// Put implements [NoteStorage]. A failed write invalidates the cached copy
// so a later read cannot serve stale data after the store and cache have
// diverged.
func (c *cachedNoteStorage) Put(ctx context.Context, id string, note *models.Note) error {
	if err := c.inner.Put(ctx, id, note); err != nil {
		c.cache.delete(id)
		return err
	}

	c.cache.set(id, note)
	return nil
}

// Delete implements [NoteStorage]. The cached copy is dropped regardless of
// the outcome of the durable delete.
func (c *cachedNoteStorage) Delete(ctx context.Context, id string) error {
	c.cache.delete(id)
	return c.inner.Delete(ctx, id)
}

// ListIDs implements [NoteStorage]. Listing always goes to the durable
// store; the cache holds a subset and cannot answer it.
func (c *cachedNoteStorage) ListIDs(ctx context.Context) ([]string, error) {
	return c.inner.ListIDs(ctx)
}
