package types

import "errors"

var (
	// ErrCrewTooLarge is returned when a crew exceeds a starship's crew size.
	ErrCrewTooLarge = errors.New("crew exceeds starship crew size")
	// ErrTooManyPassengers is returned when passengers exceed a starship's capacity.
	ErrTooManyPassengers = errors.New("passengers exceed starship capacity")
	// ErrNilCollection is returned when a nil Crew or Passengers is assigned.
	ErrNilCollection = errors.New("nil crew or passengers")
)
