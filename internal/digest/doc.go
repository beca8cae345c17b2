// Package digest fingerprints artifact bytes with BLAKE2b-256.
//
// Sum is stored in the run manifest; ShortOf is the truncated form printed
// by the CLI.
package digest
