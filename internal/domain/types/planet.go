package types

// Planet is a SWAPI planet enriched with Wookieepedia data.
type Planet struct {
	URL               string   `json:"url"`
	Name              string   `json:"name"`
	Region            *string  `json:"region"`
	Sector            *string  `json:"sector"`
	Suns              *int     `json:"suns"`
	Moons             *int     `json:"moons"`
	OrbitalPeriodDays *float64 `json:"orbital_period_days"`
	DiameterKm        *int     `json:"diameter_km"`
	GravityStd        *float64 `json:"gravity_std"`
	Climate           []string `json:"climate"`
	Terrain           []string `json:"terrain"`
	Population        *int     `json:"population"`
}

func (p Planet) String() string { return p.Name }
