package types

// Droid is a mechanical being that possesses artificial intelligence.
type Droid struct {
	URL          string   `json:"url"`
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	Manufacturer *string  `json:"manufacturer"`
	CreateYear   *string  `json:"create_year"`
	HeightM      *float64 `json:"height_m"`
	MassKg       *float64 `json:"mass_kg"`
	Equipment    []string `json:"equipment"`
}

func (d Droid) String() string { return d.Name }

func (Droid) isMember() {}
