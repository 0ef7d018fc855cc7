package seedfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	f := NewFile(path, logger.Discard())
	ctx := context.Background()

	in := &domain.Dataset{
		Users:              []domain.User{{ID: 4, Name: "Leia", Email: "leia@alderaan.gov", Password: "hope"}},
		Characters:         []domain.Character{{ID: 9, Name: "R2-D2", Height: 96, Mass: 32, HairColor: "n/a", SkinColor: "white, blue", EyeColor: "red", Gender: "n/a"}},
		Vehicles:           []domain.Vehicle{{ID: 2, Name: "T-47", CostInCredits: 1000000000000}},
		FavoriteCharacters: []domain.FavoriteCharacter{{ID: 1, CharacterID: 9, UserID: 4}},
	}
	require.NoError(t, f.SaveDataset(ctx, in))

	out, err := f.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.Users, out.Users)
	assert.Equal(t, in.Characters, out.Characters)
	assert.Equal(t, in.Vehicles, out.Vehicles)
	assert.Equal(t, in.FavoriteCharacters, out.FavoriteCharacters)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestLoad_MissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.json"), logger.Discard())

	_, err := f.LoadDataset(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": [`), 0o644))

	_, err := NewFile(path, logger.Discard()).LoadDataset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode seed file")
}

func TestLoad_PartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"planets":[{"id":1,"name":"Hoth","population":0}]}`), 0o644))

	ds, err := NewFile(path, logger.Discard()).LoadDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Planets, 1)
	assert.Equal(t, "Hoth", ds.Planets[0].Name)
	assert.Empty(t, ds.Users)
}
