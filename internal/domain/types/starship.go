package types

import "fmt"

// Starship is a crewed vehicle used for traveling in realspace or hyperspace.
//
// CrewSize and PassengerCapacity come from the source row and bound
// AssignCrew and AddPassengers; they are not serialized.
type Starship struct {
	URL                  *string     `json:"url"`
	Name                 string      `json:"name"`
	Model                string      `json:"model"`
	StarshipClass        *string     `json:"starship_class"`
	Manufacturer         *string     `json:"manufacturer"`
	LengthM              *float64    `json:"length_m"`
	MaxAtmospheringSpeed *int        `json:"max_atmosphering_speed"`
	HyperdriveRating     *float64    `json:"hyperdrive_rating"`
	MGLT                 *int        `json:"MGLT"`
	Armament             []string    `json:"armament"`
	CrewMembers          *Crew       `json:"crew_members"`
	PassengersOnBoard    *Passengers `json:"passengers_on_board"`
	CargoCapacityKg      *float64    `json:"cargo_capacity_kg"`
	Consumables          *string     `json:"consumables"`

	CrewSize          *int `json:"-"`
	PassengerCapacity *int `json:"-"`
}

// String returns the model; starship names are often too generic.
func (s Starship) String() string { return s.Model }

// AssignCrew sets the starship's crew. The starship is left unchanged when
// c is nil or larger than a known crew size.
func (s *Starship) AssignCrew(c *Crew) error {
	if c == nil {
		return ErrNilCollection
	}
	if s.CrewSize != nil && c.Len() > *s.CrewSize {
		return fmt.Errorf("%w: %d assigned, room for %d", ErrCrewTooLarge, c.Len(), *s.CrewSize)
	}
	s.CrewMembers = c
	return nil
}

// AddPassengers boards p. The starship is left unchanged when p is nil or
// exceeds a known passenger capacity.
func (s *Starship) AddPassengers(p *Passengers) error {
	if p == nil {
		return ErrNilCollection
	}
	if s.PassengerCapacity != nil && p.Len() > *s.PassengerCapacity {
		return fmt.Errorf("%w: %d boarding, room for %d", ErrTooManyPassengers, p.Len(), *s.PassengerCapacity)
	}
	s.PassengersOnBoard = p
	return nil
}
