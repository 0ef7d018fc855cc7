package storage

import (
	"context"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/database/dbtest"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *GormStorage {
	t.Helper()
	c := dbtest.New(t)
	return NewGormStorage(c.Gorm, logger.Discard())
}

func seedUser(t *testing.T, s *GormStorage, email string) *domain.User {
	t.Helper()
	u := &domain.User{Name: "Luke", Email: email, Password: "x"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedCharacter(t *testing.T, s *GormStorage, name string) *domain.Character {
	t.Helper()
	c := &domain.Character{Name: name, Height: 172, Mass: 77, HairColor: "blond",
		SkinColor: "fair", EyeColor: "blue", Gender: "male"}
	require.NoError(t, s.CreateCharacter(context.Background(), c))
	return c
}

func TestListUsers_EmptyTable(t *testing.T) {
	s := newTestStorage(t)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestCreateUser_AssignsIDAndRoundTrips(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u := seedUser(t, s, "luke@rebellion.org")
	assert.NotZero(t, u.ID)

	got, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Luke", got.Name)
	assert.Equal(t, "luke@rebellion.org", got.Email)
	assert.Equal(t, "x", got.Password)
	assert.Empty(t, got.FavoriteCharacters)
}

func TestCreateUser_DuplicateEmailFails(t *testing.T) {
	s := newTestStorage(t)

	seedUser(t, s, "leia@rebellion.org")
	err := s.CreateUser(context.Background(), &domain.User{Name: "Leia", Email: "leia@rebellion.org", Password: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert into users")
}

func TestGetByID_MissingReturnsNil(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	seedCharacter(t, s, "Yoda")

	ch, err := s.GetCharacterByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, ch)

	p, err := s.GetPlanetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	v, err := s.GetVehicleByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBaseEntities_CreateAndList(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	planet := &domain.Planet{Name: "Tatooine", Climate: "arid", Diameter: 10465, Gravity: 1,
		OrbitalPeriod: 304, Population: 200000, RotationPeriod: 23, SurfaceWater: 1, Terrain: "desert"}
	require.NoError(t, s.CreatePlanet(ctx, planet))

	vehicle := &domain.Vehicle{Name: "Sand Crawler", Model: "Digger Crawler", CargoCapacity: 50000,
		Consumables: "2 months", CostInCredits: 150000, VehicleClass: "wheeled",
		Manufacturer: "Corellia Mining Corporation", Passengers: 30}
	require.NoError(t, s.CreateVehicle(ctx, vehicle))

	planets, err := s.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.Equal(t, int64(200000), planets[0].Population)

	vehicles, err := s.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Digger Crawler", vehicles[0].Model)
	assert.Equal(t, int64(150000), vehicles[0].CostInCredits)
}

func TestFavorites_CreateFindDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u := seedUser(t, s, "han@falcon.space")
	c := seedCharacter(t, s, "Chewbacca")

	fav := &domain.FavoriteCharacter{UserID: u.ID, CharacterID: c.ID}
	require.NoError(t, s.CreateFavoriteCharacter(ctx, fav))
	assert.NotZero(t, fav.ID)

	found, err := s.FindFavoriteCharacter(ctx, u.ID, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, fav.ID, found.ID)

	missing, err := s.FindFavoriteCharacter(ctx, u.ID, c.ID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// связанное избранное подтягивается к пользователю и персонажу
	gotUser, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, gotUser.FavoriteCharacters, 1)
	assert.Equal(t, c.ID, gotUser.FavoriteCharacters[0].CharacterID)

	chars, err := s.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, chars, 1)
	require.Len(t, chars[0].FavoriteCharacters, 1)

	require.NoError(t, s.DeleteFavoriteCharacter(ctx, found))

	again, err := s.FindFavoriteCharacter(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	list, err := s.ListFavoriteCharactersByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavorites_ListByUserFiltersOtherUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u1 := seedUser(t, s, "one@test.io")
	u2 := seedUser(t, s, "two@test.io")
	planet := &domain.Planet{Name: "Hoth", Climate: "frozen", Terrain: "tundra"}
	require.NoError(t, s.CreatePlanet(ctx, planet))

	require.NoError(t, s.CreateFavoritePlanet(ctx, &domain.FavoritePlanet{UserID: u1.ID, PlanetID: planet.ID}))
	require.NoError(t, s.CreateFavoritePlanet(ctx, &domain.FavoritePlanet{UserID: u2.ID, PlanetID: planet.ID}))

	favs, err := s.ListFavoritePlanetsByUser(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, u1.ID, favs[0].UserID)

	vehicles, err := s.ListFavoriteVehiclesByUser(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestFavorites_ForeignKeyEnforced(t *testing.T) {
	s := newTestStorage(t)

	err := s.CreateFavoriteVehicle(context.Background(), &domain.FavoriteVehicle{UserID: 42, VehicleID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert into favorite_vehicles")
}
