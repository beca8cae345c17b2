package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"holocron/internal/domain"
)

const cacheFilename = "swapi_cache.json"

// ResourceCacheStore persists SWAPI responses keyed by URL.
type ResourceCacheStore struct {
	dir string
	mu  sync.Mutex
}

// NewResourceCacheStore returns a ResourceCacheStore rooted at dir.
func NewResourceCacheStore(dir string) *ResourceCacheStore {
	return &ResourceCacheStore{dir: dir}
}

// SaveResource stores or replaces the record cached for url.
func (s *ResourceCacheStore) SaveResource(url string, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	path := filepath.Join(s.dir, cacheFilename)
	m := map[string]domain.Record{}
	if err := readJSON(path, &m); err != nil {
		return fmt.Errorf("read cache %s: %w", path, err)
	}
	m[url] = rec
	return writeJSON(path, m, 0o600)
}

// LoadResource returns the record cached for url.
func (s *ResourceCacheStore) LoadResource(url string) (domain.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, cacheFilename)
	m := map[string]domain.Record{}
	if err := readJSON(path, &m); err != nil {
		return nil, false, err
	}
	rec, ok := m[url]
	return rec, ok, nil
}

// Compile-time assertion that ResourceCacheStore implements domain.ResourceCache.
var _ domain.ResourceCache = (*ResourceCacheStore)(nil)
