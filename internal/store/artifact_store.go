package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"holocron/internal/digest"
	"holocron/internal/domain"
)

// ManifestFile is the name of the manifest written beside the artifacts.
const ManifestFile = "manifest.json"

var (
	// ErrBadArtifactName is returned for names that are empty or contain a path.
	ErrBadArtifactName = errors.New("artifact name must be a plain file name")
	// ErrDigestMismatch is returned when an artifact no longer matches its manifest entry.
	ErrDigestMismatch = errors.New("artifact digest mismatch")
)

// ArtifactStore writes JSON artifacts into an output directory and keeps a
// manifest entry for each one.
type ArtifactStore struct {
	dir   string
	runID string
	now   func() time.Time

	mu      sync.Mutex
	entries []domain.ManifestEntry
}

// NewArtifactStore returns an ArtifactStore rooted at dir, creating it if needed.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ArtifactStore{dir: dir, runID: uuid.NewString(), now: time.Now}, nil
}

// Dir returns the output directory.
func (s *ArtifactStore) Dir() string { return s.dir }

// RunID identifies the run this store writes for.
func (s *ArtifactStore) RunID() string { return s.runID }

// Write encodes v as indented JSON into name and records its manifest
// entry. Writing the same name again replaces the earlier entry.
func (s *ArtifactStore) Write(name string, v any) (domain.ManifestEntry, error) {
	if name == "" || filepath.Base(name) != name || name == ManifestFile {
		return domain.ManifestEntry{}, fmt.Errorf("%w: %q", ErrBadArtifactName, name)
	}
	b, err := encodeJSON(v)
	if err != nil {
		return domain.ManifestEntry{}, fmt.Errorf("encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(filepath.Join(s.dir, name), b, 0o644); err != nil {
		return domain.ManifestEntry{}, err
	}
	entry := domain.ManifestEntry{File: name, Bytes: len(b), Digest: digest.Sum(b)}
	for i, e := range s.entries {
		if e.File == name {
			s.entries[i] = entry
			return entry, nil
		}
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Entries returns the manifest entries recorded so far, in write order.
func (s *ArtifactStore) Entries() []domain.ManifestEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ManifestEntry(nil), s.entries...)
}

// WriteManifest writes manifest.json listing every artifact in the
// directory: entries of an earlier manifest are kept unless this run
// rewrote the same file, and this run's new files follow. An unreadable
// earlier manifest is replaced.
func (s *ArtifactStore) WriteManifest() (domain.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev []domain.ManifestEntry
	if old, err := LoadManifest(s.dir); err == nil {
		prev = old.Entries
	}
	m := domain.Manifest{
		RunID:     s.runID,
		CreatedAt: s.now().UTC(),
		Entries:   mergeEntries(prev, s.entries),
	}
	if err := writeJSON(filepath.Join(s.dir, ManifestFile), m, 0o644); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

// mergeEntries overlays cur on prev by file name, keeping prev's order.
func mergeEntries(prev, cur []domain.ManifestEntry) []domain.ManifestEntry {
	out := make([]domain.ManifestEntry, 0, len(prev)+len(cur))
	idx := make(map[string]int, len(prev)+len(cur))
	for _, e := range prev {
		if _, dup := idx[e.File]; dup {
			continue
		}
		idx[e.File] = len(out)
		out = append(out, e)
	}
	for _, e := range cur {
		if i, ok := idx[e.File]; ok {
			out[i] = e
			continue
		}
		idx[e.File] = len(out)
		out = append(out, e)
	}
	return out
}

// LoadManifest reads the manifest in dir.
func LoadManifest(dir string) (domain.Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return domain.Manifest{}, err
	}
	var m domain.Manifest
	if err := decodeStrict(b, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// VerifyManifest recomputes the digest of every artifact listed in dir's
// manifest. It returns the entries that are missing or changed, joined
// into an error wrapping ErrDigestMismatch.
func VerifyManifest(dir string) (domain.Manifest, error) {
	m, err := LoadManifest(dir)
	if err != nil {
		return domain.Manifest{}, err
	}
	var errs []error
	for _, e := range m.Entries {
		b, err := os.ReadFile(filepath.Join(dir, e.File))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrDigestMismatch, e.File, err))
			continue
		}
		if got := digest.Sum(b); got != e.Digest {
			errs = append(errs, fmt.Errorf("%w: %s: have %s, manifest %s",
				ErrDigestMismatch, e.File, digest.ShortOf(got), digest.ShortOf(e.Digest)))
		}
	}
	return m, errors.Join(errs...)
}

// Compile-time assertion that ArtifactStore implements domain.ArtifactWriter.
var _ domain.ArtifactWriter = (*ArtifactStore)(nil)
