// Package store provides file-based input and output for holocron.
//
// It reads source data from the data directory and writes derived
// artifacts to the output directory. Writes go through a temp file and an
// atomic rename so a failed run never leaves a half-written artifact. All
// stores are concurrency-safe via internal locking.
//
// The package includes:
//   - FileSource: CSV and JSON record readers rooted at a data directory
//   - ArtifactStore: JSON artifact writer that records a manifest entry
//     (size and BLAKE2b-256 digest) per file
//   - ResourceCacheStore: SWAPI responses cached in a single JSON file
package store
