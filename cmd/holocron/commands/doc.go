// Package commands defines the holocron CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run       Run pipeline steps (all by default) and write the manifest
//   - episodes  Convert the episode roster and report viewership
//   - show      Print one enriched planet, person, droid, member or starship
//   - search    Search a SWAPI resource by name
//   - verify    Check the artifacts in the output directory against the manifest
//
// # Implementation
//
// The root command loads .env, the YAML config and HOLOCRON_* variables,
// applies flag overrides, builds the zap logger and the dependency graph
// (stores, SWAPI client, pipeline) before any subcommand runs. The logger is
// synced after the subcommand returns.
package commands
