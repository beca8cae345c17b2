package assemble

import (
	"holocron/internal/domain"
)

// Planet builds a Planet from a SWAPI planet merged with supplement data.
func (a *Assembler) Planet(rec domain.Record) (domain.Planet, error) {
	f := a.fields("planet", rec)
	name, err := f.required("name")
	if err != nil {
		return domain.Planet{}, err
	}
	url, err := f.required("url")
	if err != nil {
		return domain.Planet{}, err
	}
	return domain.Planet{
		URL:               url,
		Name:              name,
		Region:            f.str("region"),
		Sector:            f.str("sector"),
		Suns:              f.integer("suns"),
		Moons:             f.integer("moons"),
		OrbitalPeriodDays: f.float("orbital_period"),
		DiameterKm:        f.integer("diameter"),
		GravityStd:        f.gravity("gravity"),
		Climate:           f.list("climate", ", "),
		Terrain:           f.list("terrain", ", "),
		Population:        f.integer("population"),
	}, nil
}

// Person builds a Person. The homeworld is resolved by the caller and may
// be nil.
func (a *Assembler) Person(rec domain.Record, homeworld *domain.Planet) (domain.Person, error) {
	f := a.fields("person", rec)
	name, err := f.required("name")
	if err != nil {
		return domain.Person{}, err
	}
	url, err := f.required("url")
	if err != nil {
		return domain.Person{}, err
	}
	return domain.Person{
		URL:            url,
		Name:           name,
		BirthYear:      f.str("birth_year"),
		HeightM:        f.float("height"),
		MassKg:         f.float("mass"),
		Homeworld:      homeworld,
		ForceSensitive: f.boolean("force_sensitive"),
	}, nil
}

// Droid builds a Droid.
func (a *Assembler) Droid(rec domain.Record) (domain.Droid, error) {
	f := a.fields("droid", rec)
	name, err := f.required("name")
	if err != nil {
		return domain.Droid{}, err
	}
	url, err := f.required("url")
	if err != nil {
		return domain.Droid{}, err
	}
	model, err := f.required("model")
	if err != nil {
		return domain.Droid{}, err
	}
	return domain.Droid{
		URL:          url,
		Name:         name,
		Model:        model,
		Manufacturer: f.str("manufacturer"),
		CreateYear:   f.str("create_year"),
		HeightM:      f.float("height"),
		MassKg:       f.float("mass"),
		Equipment:    f.list("equipment", "|"),
	}, nil
}

// Starship builds a Starship without crew or passengers; assigning them is
// a separate step.
func (a *Assembler) Starship(rec domain.Record) (domain.Starship, error) {
	f := a.fields("starship", rec)
	name, err := f.required("name")
	if err != nil {
		return domain.Starship{}, err
	}
	model, err := f.required("model")
	if err != nil {
		return domain.Starship{}, err
	}
	return domain.Starship{
		URL:                  f.str("url"),
		Name:                 name,
		Model:                model,
		StarshipClass:        f.str("starship_class"),
		Manufacturer:         f.str("manufacturer"),
		LengthM:              f.float("length"),
		MaxAtmospheringSpeed: f.integer("max_atmosphering_speed"),
		HyperdriveRating:     f.float("hyperdrive_rating"),
		MGLT:                 f.integer("MGLT"),
		Armament:             f.list("armament", ","),
		CargoCapacityKg:      f.float("cargo_capacity"),
		Consumables:          f.str("consumables"),
		CrewSize:             f.integer("crew"),
		PassengerCapacity:    f.integer("passengers"),
	}, nil
}
