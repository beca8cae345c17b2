// Package episode aggregates converted episode rosters: viewership
// extremes, per-director counts and per-writer groupings. Every function is
// a single pass over the input and keeps first-appearance order.
package episode
