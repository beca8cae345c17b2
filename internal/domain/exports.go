package domain

import (
	interfaces "holocron/internal/domain/interfaces"
	types "holocron/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Record        = types.Record
	Member        = types.Member
	Planet        = types.Planet
	Person        = types.Person
	Droid         = types.Droid
	Starship      = types.Starship
	Episode       = types.Episode
	Crew          = types.Crew
	Assignment    = types.Assignment
	Passengers    = types.Passengers
	Manifest      = types.Manifest
	ManifestEntry = types.ManifestEntry
)

// Ordered is an insertion-ordered map that serializes as a JSON object.
type Ordered[V any] = types.Ordered[V]

// NewOrdered returns an empty Ordered map.
func NewOrdered[V any]() *Ordered[V] { return types.NewOrdered[V]() }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DataSource     = interfaces.DataSource
	ArtifactWriter = interfaces.ArtifactWriter
	ResourceCache  = interfaces.ResourceCache
	ResourceClient = interfaces.ResourceClient
)

// Errors re-exported from the types subpackage.
var (
	ErrCrewTooLarge      = types.ErrCrewTooLarge
	ErrTooManyPassengers = types.ErrTooManyPassengers
	ErrNilCollection     = types.ErrNilCollection
)

// NewCrew and NewPassengers re-export the collection constructors.
var (
	NewCrew       = types.NewCrew
	NewPassengers = types.NewPassengers
	PassengerKey  = types.PassengerKey
)
