package types

// Person is a SWAPI person enriched with Wookieepedia data.
type Person struct {
	URL            string   `json:"url"`
	Name           string   `json:"name"`
	BirthYear      *string  `json:"birth_year"`
	HeightM        *float64 `json:"height_m"`
	MassKg         *float64 `json:"mass_kg"`
	Homeworld      *Planet  `json:"homeworld"`
	ForceSensitive *bool    `json:"force_sensitive"`
}

func (p Person) String() string { return p.Name }

func (Person) isMember() {}
