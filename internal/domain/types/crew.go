package types

import (
	"encoding/json"
	"strings"
)

// Assignment pairs a crew role (for example "pilot") with the member filling it.
type Assignment struct {
	Role   string
	Member Member
}

// Crew maps crew roles to members in the order they were assigned.
type Crew struct {
	roles Ordered[Member]
}

// NewCrew returns a Crew holding the given assignments. A role assigned
// twice keeps its first position and its last member.
func NewCrew(assignments ...Assignment) *Crew {
	c := &Crew{}
	for _, a := range assignments {
		c.Assign(a.Role, a.Member)
	}
	return c
}

// Assign places m in role. A nil member is ignored.
func (c *Crew) Assign(role string, m Member) {
	if m == nil {
		return
	}
	c.roles.Set(role, m)
}

// Roles returns the assigned roles in order.
func (c *Crew) Roles() []string { return c.roles.Keys() }

// Len reports the number of assigned roles.
func (c *Crew) Len() int { return c.roles.Len() }

// String renders the crew as "pilot: Han Solo, copilot: Chewbacca".
func (c *Crew) String() string {
	parts := make([]string, 0, c.roles.Len())
	for _, role := range c.roles.keys {
		parts = append(parts, role+": "+c.roles.values[role].String())
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON encodes the crew as an object of role to member.
func (c Crew) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.roles)
}

// Passengers holds the people and droids carried aboard a starship, keyed
// by normalized name.
type Passengers struct {
	byName Ordered[Member]
}

// NewPassengers returns Passengers holding members. A later member whose
// name normalizes to an existing key replaces the earlier one.
func NewPassengers(members ...Member) *Passengers {
	p := &Passengers{}
	for _, m := range members {
		p.Add(m)
	}
	return p
}

// PassengerKey normalizes a name into a passenger key:
// "Luke Skywalker" -> "luke_skywalker", "C-3PO" -> "c_3po".
func PassengerKey(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(name))
}

// Add boards m under its normalized name. A nil member is ignored.
func (p *Passengers) Add(m Member) {
	if m == nil {
		return
	}
	p.byName.Set(PassengerKey(m.String()), m)
}

// Keys returns the normalized passenger keys in boarding order.
func (p *Passengers) Keys() []string { return p.byName.Keys() }

// Len reports the number of passengers.
func (p *Passengers) Len() int { return p.byName.Len() }

// String renders "Passengers: Luke Skywalker, C-3PO", or "" when empty.
func (p *Passengers) String() string {
	if p.byName.Len() == 0 {
		return ""
	}
	names := make([]string, 0, p.byName.Len())
	for _, m := range p.byName.Values() {
		names = append(names, m.String())
	}
	return "Passengers: " + strings.Join(names, ", ")
}

// MarshalJSON encodes the passengers as a list of member objects.
func (p Passengers) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.byName.Values())
}
