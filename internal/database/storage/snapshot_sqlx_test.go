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

func TestReadDataset(t *testing.T) {
	c := dbtest.New(t)
	gs := NewGormStorage(c.Gorm, logger.Discard())
	ss := NewSnapshotStorage(c.DB, logger.Discard())
	ctx := context.Background()

	empty, err := ss.ReadDataset(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Users)
	assert.Empty(t, empty.FavoriteVehicles)

	u := &domain.User{Name: "Obi-Wan", Email: "ben@jedi.org", Password: "hello-there"}
	require.NoError(t, gs.CreateUser(ctx, u))
	v := &domain.Vehicle{Name: "T-16", Model: "T-16 skyhopper", CargoCapacity: 50, Consumables: "0",
		CostInCredits: 14500, VehicleClass: "repulsorcraft", Manufacturer: "Incom", Passengers: 1}
	require.NoError(t, gs.CreateVehicle(ctx, v))
	require.NoError(t, gs.CreateFavoriteVehicle(ctx, &domain.FavoriteVehicle{UserID: u.ID, VehicleID: v.ID}))

	ds, err := ss.ReadDataset(ctx)
	require.NoError(t, err)

	require.Len(t, ds.Users, 1)
	assert.Equal(t, "hello-there", ds.Users[0].Password)
	require.Len(t, ds.Vehicles, 1)
	assert.Equal(t, int64(14500), ds.Vehicles[0].CostInCredits)
	require.Len(t, ds.FavoriteVehicles, 1)
	assert.Equal(t, u.ID, ds.FavoriteVehicles[0].UserID)
	assert.Equal(t, v.ID, ds.FavoriteVehicles[0].VehicleID)
	assert.Empty(t, ds.Characters)
	assert.Empty(t, ds.Planets)
}
