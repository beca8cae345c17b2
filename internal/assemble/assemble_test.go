package assemble_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"holocron/internal/assemble"
	"holocron/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func newAssembler(t *testing.T) (*assemble.Assembler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	return assemble.New(zap.New(core)), logs
}

func TestPlanet_ConvertsTatooine(t *testing.T) {
	a, logs := newAssembler(t)

	got, err := a.Planet(domain.Record{
		"url":            "https://swapi.py4e.com/api/planets/1/",
		"name":           "Tatooine",
		"region":         "Outer Rim Territories",
		"sector":         "Arkanis sector",
		"suns":           "2",
		"moons":          "3",
		"orbital_period": "304",
		"diameter":       "10465",
		"gravity":        "1 standard",
		"climate":        "arid",
		"terrain":        "desert, canyons, rock arches",
		"population":     "200000",
	})
	require.NoError(t, err)

	want := domain.Planet{
		URL:               "https://swapi.py4e.com/api/planets/1/",
		Name:              "Tatooine",
		Region:            ptr("Outer Rim Territories"),
		Sector:            ptr("Arkanis sector"),
		Suns:              ptr(2),
		Moons:             ptr(3),
		OrbitalPeriodDays: ptr(304.0),
		DiameterKm:        ptr(10465),
		GravityStd:        ptr(1.0),
		Climate:           []string{"arid"},
		Terrain:           []string{"desert", "canyons", "rock arches"},
		Population:        ptr(200000),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("planet mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, logs.Len())
}

func TestPlanet_PlaceholdersAndMissingKeysAreAbsent(t *testing.T) {
	a, logs := newAssembler(t)

	got, err := a.Planet(domain.Record{
		"url":        "planets/28/",
		"name":       "Unknown Reaches",
		"population": "unknown",
		"climate":    "N/A",
	})
	require.NoError(t, err)
	assert.Nil(t, got.Population)
	assert.Nil(t, got.Climate)
	assert.Nil(t, got.Suns)
	assert.Zero(t, logs.Len(), "absent values are not warnings")
}

func TestPlanet_UnconvertibleValueIsLogged(t *testing.T) {
	a, logs := newAssembler(t)

	got, err := a.Planet(domain.Record{"url": "u", "name": "Hoth", "diameter": "about seven thousand"})
	require.NoError(t, err)
	assert.Nil(t, got.DiameterKm)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "field not converted", entry.Message)
	assert.Equal(t, "diameter", entry.ContextMap()["field"])
	assert.Equal(t, "planet", entry.ContextMap()["entity"])
}

func TestPlanet_MissingNameFails(t *testing.T) {
	a, _ := newAssembler(t)
	_, err := a.Planet(domain.Record{"url": "u", "name": " "})
	assert.ErrorIs(t, err, assemble.ErrMissingField)
}

func TestPerson_ConvertsAndAttachesHomeworld(t *testing.T) {
	a, _ := newAssembler(t)
	home := &domain.Planet{URL: "planets/1/", Name: "Tatooine"}

	got, err := a.Person(domain.Record{
		"url":             "https://swapi.py4e.com/api/people/1/",
		"name":            "Anakin Skywalker",
		"birth_year":      "41.9BBY",
		"height":          "1.88",
		"mass":            "84",
		"homeworld":       "https://swapi.py4e.com/api/planets/1/",
		"force_sensitive": true,
	}, home)
	require.NoError(t, err)

	assert.Equal(t, "Anakin Skywalker", got.String())
	assert.Equal(t, ptr("41.9BBY"), got.BirthYear)
	assert.Equal(t, ptr(1.88), got.HeightM)
	assert.Equal(t, ptr(84.0), got.MassKg)
	assert.Same(t, home, got.Homeworld)
	assert.Equal(t, ptr(true), got.ForceSensitive)
}

func TestDroid_SplitsEquipmentOnPipe(t *testing.T) {
	a, _ := newAssembler(t)

	got, err := a.Droid(domain.Record{
		"url":          "https://swapi.py4e.com/api/people/3/",
		"name":         "R2-D2",
		"model":        "R2-series astromech droid",
		"manufacturer": "Industrial Automaton",
		"create_year":  "33BBY",
		"height":       "1.09",
		"mass":         "32",
		"equipment":    "Electroshock prod|Holographic projector|Periscope",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Electroshock prod", "Holographic projector", "Periscope"}, got.Equipment)
	assert.Equal(t, ptr(1.09), got.HeightM)
	assert.Equal(t, ptr(32.0), got.MassKg)
}

func TestDroid_MissingModelFails(t *testing.T) {
	a, _ := newAssembler(t)
	_, err := a.Droid(domain.Record{"url": "u", "name": "R2-D2"})
	assert.ErrorIs(t, err, assemble.ErrMissingField)
}

func TestStarship_ConvertsTwilight(t *testing.T) {
	a, _ := newAssembler(t)

	got, err := a.Starship(domain.Record{
		"url":                    "",
		"name":                   "Twilight",
		"model":                  "G9 Rigger-class light freighter",
		"starship_class":         "Light freighter",
		"manufacturer":           "Corellian Engineering Corporation",
		"length":                 "34.1",
		"max_atmosphering_speed": "1,000",
		"hyperdrive_rating":      "2.0",
		"MGLT":                   "unknown",
		"armament":               "Twin laser cannons, Light laser cannon",
		"crew":                   "2",
		"passengers":             "4",
		"cargo_capacity":         "200000",
		"consumables":            "2 months",
	})
	require.NoError(t, err)

	assert.Nil(t, got.URL)
	assert.Equal(t, "G9 Rigger-class light freighter", got.String())
	assert.Equal(t, ptr(34.1), got.LengthM)
	assert.Equal(t, ptr(1000), got.MaxAtmospheringSpeed)
	assert.Equal(t, ptr(2.0), got.HyperdriveRating)
	assert.Nil(t, got.MGLT)
	assert.Equal(t, []string{"Twin laser cannons", "Light laser cannon"}, got.Armament)
	assert.Equal(t, ptr(200000.0), got.CargoCapacityKg)
	assert.Equal(t, ptr(2), got.CrewSize)
	assert.Equal(t, ptr(4), got.PassengerCapacity)
	assert.Nil(t, got.CrewMembers)
}

func TestEpisodes_ConvertsRosterRows(t *testing.T) {
	a, logs := newAssembler(t)

	got := a.Episodes([]domain.Record{
		{
			"series_title":          "Star Wars: The Clone Wars",
			"series_season_num":     "1",
			"series_episode_num":    "1",
			"season_episode_num":    "1",
			"episode_title":         "Ambush",
			"episode_director":      "Dave Filoni",
			"episode_writers":       "Steven Melching",
			"episode_release_date":  "October 3, 2008",
			"episode_prod_code":     "1.16",
			"episode_us_viewers_mm": "3.99",
		},
		{
			"series_season_num":     "",
			"episode_title":         "Rising Malevolence",
			"episode_writers":       "Steven Melching, Bill Canterbury",
			"episode_us_viewers_mm": "",
		},
	})
	require.Len(t, got, 2)

	assert.Equal(t, ptr(1), got[0].SeriesSeasonNum)
	assert.Equal(t, ptr(1.16), got[0].ProdCode)
	assert.Equal(t, ptr(3.99), got[0].USViewersMM)
	assert.Equal(t, []string{"Steven Melching"}, got[0].Writers)

	assert.Nil(t, got[1].SeriesSeasonNum)
	assert.Nil(t, got[1].USViewersMM)
	assert.Equal(t, []string{"Steven Melching", "Bill Canterbury"}, got[1].Writers)
	assert.Equal(t, "Rising Malevolence", got[1].TitleOrEmpty())
	assert.Zero(t, logs.Len())
}
