// Package lookup enriches SWAPI resources with Wookieepedia supplements.
//
// It fetches a planet, person or droid from SWAPI, overlays the matching
// supplemental record (matched by URL, then by name), and assembles the
// typed entity. People get their homeworld resolved to an enriched Planet;
// a supplement never overrides the homeworld reference.
package lookup
