// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, then an optional YAML file, then HOLOCRON_*
// environment variables), builds the zap logger, and constructs the file
// stores, the SWAPI client and the pipeline service, exposing them through
// the Wire struct for commands to use.
package app
