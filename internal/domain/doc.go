// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (entities, source records, manifests) and
// contracts (interfaces) only.
package domain
