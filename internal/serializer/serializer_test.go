package serializer

import (
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_OmitsPasswordAndKeepsEmptyLists(t *testing.T) {
	u := domain.User{ID: 1, Name: "Luke", Email: "luke@rebellion.org", Password: "secret"}

	b, err := json.Marshal(NewUser(u))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":1,"name":"Luke","email":"luke@rebellion.org","favorite_character":[],"favorite_planet":[],"favorite_vehicle":[]}`,
		string(b))
	assert.NotContains(t, string(b), "secret")
}

func TestNewUser_FieldOrderIsFixed(t *testing.T) {
	b, err := json.Marshal(NewUser(domain.User{ID: 2, Name: "Leia", Email: "leia@alderaan.gov"}))
	require.NoError(t, err)

	assert.Equal(t,
		`{"id":2,"name":"Leia","email":"leia@alderaan.gov","favorite_character":[],"favorite_planet":[],"favorite_vehicle":[]}`,
		string(b))
}

func TestNewCharacter_EmbedsFavoritesInOwnShape(t *testing.T) {
	c := domain.Character{
		ID: 5, Name: "R2-D2", Height: 96, Mass: 32, HairColor: "n/a", SkinColor: "white, blue",
		EyeColor: "red", Gender: "n/a",
		FavoriteCharacters: []domain.FavoriteCharacter{{ID: 9, CharacterID: 5, UserID: 1}},
	}

	b, err := json.Marshal(NewCharacter(c))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id":5,"name":"R2-D2","height":96,"mass":32,"hair_color":"n/a","skin_color":"white, blue",
		"eye_color":"red","gender":"n/a",
		"favorite_character":[{"id":9,"character_id":5,"user_id":1}]
	}`, string(b))
}

func TestNewPlanetAndVehicle_LargeNumbers(t *testing.T) {
	p := NewPlanet(domain.Planet{ID: 1, Name: "Coruscant", Population: 1000000000000})
	assert.Equal(t, int64(1000000000000), p.Population)
	assert.NotNil(t, p.FavoritePlanets)

	v := NewVehicle(domain.Vehicle{ID: 1, Name: "AT-AT", CostInCredits: 3000000000, CargoCapacity: 1000})
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cost_in_credits":3000000000`)
	assert.Contains(t, string(b), `"favorite_vehicle":[]`)
}

func TestCollections_NeverNull(t *testing.T) {
	assert.NotNil(t, Users(nil))
	assert.NotNil(t, Characters(nil))
	assert.NotNil(t, Planets(nil))
	assert.NotNil(t, Vehicles(nil))

	b, err := json.Marshal(NewUserFavorites(domain.UserFavorites{
		Planets: []domain.FavoritePlanet{{ID: 3, PlanetID: 7, UserID: 1}},
	}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"favorite_characters":[],"favorite_planets":[{"id":3,"planet_id":7,"user_id":1}],"favorite_vehicles":[]}`,
		string(b))
}

func TestFavoriteCreated(t *testing.T) {
	tests := []struct {
		name string
		in   domain.FavoriteSummary
		want string
	}{
		{"character", domain.FavoriteSummary{ID: 1, Kind: domain.FavoriteKindCharacter, TargetID: 5, UserID: 1},
			`{"id":1,"character":5,"user":1}`},
		{"planet", domain.FavoriteSummary{ID: 2, Kind: domain.FavoriteKindPlanet, TargetID: 7, UserID: 1},
			`{"id":2,"planet":7,"user":1}`},
		{"vehicle", domain.FavoriteSummary{ID: 3, Kind: domain.FavoriteKindVehicle, TargetID: 4, UserID: 2},
			`{"id":3,"vehicle":4,"user":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(FavoriteCreated(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}
