package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holocron/internal/domain/types"
)

func intPtr(v int) *int { return &v }

func TestCrew_String_KeepsAssignmentOrder(t *testing.T) {
	crew := types.NewCrew(
		types.Assignment{Role: "pilot", Member: types.Person{Name: "Han Solo"}},
		types.Assignment{Role: "copilot", Member: types.Person{Name: "Chewbacca"}},
	)
	assert.Equal(t, "pilot: Han Solo, copilot: Chewbacca", crew.String())
	assert.Equal(t, []string{"pilot", "copilot"}, crew.Roles())
}

func TestCrew_MarshalJSON_RoleToMember(t *testing.T) {
	crew := types.NewCrew(
		types.Assignment{Role: "pilot", Member: types.Person{URL: "u1", Name: "Anakin Skywalker"}},
		types.Assignment{Role: "copilot", Member: types.Droid{URL: "u3", Name: "R2-D2", Model: "R2"}},
	)
	b, err := json.Marshal(crew)
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Anakin Skywalker", got["pilot"]["name"])
	assert.Equal(t, "R2", got["copilot"]["model"])
	assert.Regexp(t, `^\{"pilot":.*,"copilot":`, string(b))
}

func TestPassengerKey_Normalizes(t *testing.T) {
	assert.Equal(t, "luke_skywalker", types.PassengerKey("Luke Skywalker"))
	assert.Equal(t, "c_3po", types.PassengerKey("C-3PO"))
}

func TestPassengers_StringAndJSON(t *testing.T) {
	p := types.NewPassengers(
		types.Person{Name: "Luke Skywalker"},
		types.Droid{Name: "C-3PO"},
	)
	assert.Equal(t, "Passengers: Luke Skywalker, C-3PO", p.String())
	assert.Equal(t, []string{"luke_skywalker", "c_3po"}, p.Keys())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "C-3PO", got[1]["name"])

	assert.Equal(t, "", types.NewPassengers().String())
}

func TestPassengers_DuplicateNameReplaces(t *testing.T) {
	p := types.NewPassengers(
		types.Person{Name: "Luke Skywalker", URL: "old"},
		types.Person{Name: "luke skywalker", URL: "new"},
	)
	require.Equal(t, 1, p.Len())
	b, err := json.Marshal(p)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0]["url"])
}

func TestNilMembersAreSkipped(t *testing.T) {
	p := types.NewPassengers(types.Person{Name: "Luke Skywalker"}, nil)
	p.Add(nil)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, "Passengers: Luke Skywalker", p.String())

	crew := types.NewCrew(types.Assignment{Role: "pilot"})
	crew.Assign("copilot", nil)
	assert.Equal(t, 0, crew.Len())
	assert.Equal(t, "", crew.String())
}

func TestStarship_AssignCrew_RejectsOversizedCrew(t *testing.T) {
	ship := types.Starship{Name: "Twilight", Model: "G9 Rigger-class light freighter", CrewSize: intPtr(1)}
	crew := types.NewCrew(
		types.Assignment{Role: "pilot", Member: types.Person{Name: "Anakin Skywalker"}},
		types.Assignment{Role: "copilot", Member: types.Droid{Name: "R2-D2"}},
	)

	err := ship.AssignCrew(crew)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrCrewTooLarge))
	assert.Nil(t, ship.CrewMembers)

	ship.CrewSize = intPtr(2)
	require.NoError(t, ship.AssignCrew(crew))
	assert.Same(t, crew, ship.CrewMembers)
}

func TestStarship_AddPassengers_RejectsNilAndOverCapacity(t *testing.T) {
	ship := types.Starship{PassengerCapacity: intPtr(0)}
	assert.ErrorIs(t, ship.AddPassengers(nil), types.ErrNilCollection)
	assert.ErrorIs(t, ship.AddPassengers(types.NewPassengers(types.Person{Name: "Padmé Amidala"})), types.ErrTooManyPassengers)
	assert.Nil(t, ship.PassengersOnBoard)

	ship.PassengerCapacity = nil
	require.NoError(t, ship.AddPassengers(types.NewPassengers(types.Person{Name: "Padmé Amidala"})))
	assert.Equal(t, 1, ship.PassengersOnBoard.Len())
}
