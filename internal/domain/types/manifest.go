package types

import "time"

// ManifestEntry describes one artifact written during a run.
type ManifestEntry struct {
	File   string `json:"file"`
	Bytes  int    `json:"bytes"`
	Digest string `json:"blake2b_256"`
}

// Manifest lists every artifact a run produced.
type Manifest struct {
	RunID     string          `json:"run_id"`
	CreatedAt time.Time       `json:"created_at"`
	Entries   []ManifestEntry `json:"entries"`
}
