// Package pipeline runs the fixed ingestion sequence.
//
// A run is a list of named steps executed in order:
//   - episodes: convert the episode roster, then write the converted list,
//     per-director counts and per-writer groupings; log the most and least
//     viewed episodes.
//   - planet, droid, person: fetch a SWAPI resource, merge its Wookieepedia
//     supplement and write the enriched entity.
//   - starship: build a starship from the starships supplement, then board
//     the configured crew and passengers.
//
// Each artifact lands in the output directory through a
// domain.ArtifactWriter, and a run finishes by writing the manifest.
package pipeline
