// Package swapi provides an HTTP implementation of the domain.ResourceClient
// interface used by holocron.
//
// SWAPI serves Star Wars reference data as JSON resources addressed by URL
// (https://swapi.py4e.com/api/people/1/). This package offers a concrete
// client for it.
//
// Supported operations include:
//   - Fetching a resource by absolute URL or by a path relative to the API
//     root ("planets/1/").
//   - Searching a resource collection with ?search=, following pagination.
//
// Responses are memoized per resolved URL for the life of the client and
// concurrent lookups of the same URL share one request. An optional
// domain.ResourceCache keeps responses between runs.
//
// All requests accept a context for cancellation and deadlines. Non-2xx
// statuses are returned as errors with the HTTP method, full URL, and
// status text to aid diagnostics.
package swapi
