package types_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holocron/internal/domain/types"
)

var keyPattern = regexp.MustCompile(`"([A-Za-z_]+)":`)

// topLevelKeys returns object keys in encoded order for a flat value.
func topLevelKeys(t *testing.T, v any) []string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var keys []string
	for _, m := range keyPattern.FindAllStringSubmatch(string(b), -1) {
		keys = append(keys, m[1])
	}
	return keys
}

func TestPlanet_JSONKeyOrder(t *testing.T) {
	assert.Equal(t, []string{
		"url", "name", "region", "sector", "suns", "moons", "orbital_period_days",
		"diameter_km", "gravity_std", "climate", "terrain", "population",
	}, topLevelKeys(t, types.Planet{}))
}

func TestPerson_JSONKeyOrder(t *testing.T) {
	assert.Equal(t, []string{
		"url", "name", "birth_year", "height_m", "mass_kg", "homeworld", "force_sensitive",
	}, topLevelKeys(t, types.Person{}))
}

func TestDroid_JSONKeyOrder(t *testing.T) {
	assert.Equal(t, []string{
		"url", "name", "model", "manufacturer", "create_year", "height_m", "mass_kg", "equipment",
	}, topLevelKeys(t, types.Droid{}))
}

func TestStarship_JSONKeyOrder(t *testing.T) {
	assert.Equal(t, []string{
		"url", "name", "model", "starship_class", "manufacturer", "length_m",
		"max_atmosphering_speed", "hyperdrive_rating", "MGLT", "armament", "crew_members",
		"passengers_on_board", "cargo_capacity_kg", "consumables",
	}, topLevelKeys(t, types.Starship{}))
}

func TestStarship_AbsentValuesAreNull(t *testing.T) {
	b, err := json.Marshal(types.Starship{Name: "Twilight", Model: "G9"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"crew_members":null`)
	assert.Contains(t, string(b), `"MGLT":null`)
	assert.NotContains(t, string(b), "CrewSize")
}

func TestOrdered_InsertionOrderAndOverwrite(t *testing.T) {
	var o types.Ordered[int]
	o.Set("Dave Filoni", 1)
	o.Set("Brian Kalin O'Connell", 1)
	o.Set("Dave Filoni", 2)

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Dave Filoni":2,"Brian Kalin O'Connell":1}`, string(b))
	assert.Equal(t, `{"Dave Filoni":2,"Brian Kalin O'Connell":1}`, string(b))
	assert.Equal(t, []int{2, 1}, o.Values())
}

func TestOrdered_EmptyMarshalsAsObject(t *testing.T) {
	b, err := json.Marshal(types.NewOrdered[string]())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestRecord_MergeSkipsKeysAndCopies(t *testing.T) {
	base := types.Record{"name": "Anakin Skywalker", "homeworld": "planets/1/", "height": "188"}
	sup := types.Record{"homeworld": "Tatooine", "height": "1.88", "force_sensitive": true}

	got := base.Merge(sup, "homeworld")

	assert.Equal(t, "planets/1/", got["homeworld"])
	assert.Equal(t, "1.88", got["height"])
	assert.Equal(t, true, got["force_sensitive"])
	assert.Equal(t, "188", base["height"])
}
