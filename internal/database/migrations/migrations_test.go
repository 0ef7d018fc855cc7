package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_UpAndDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.Len(t, ups, 2)
	assert.Equal(t, ups, downs)
	assert.True(t, ups["000001_create_catalog"])
	assert.True(t, ups["000002_create_favorites"])
}

func TestFS_FavoritesReferenceParents(t *testing.T) {
	body, err := fs.ReadFile(FS, "000002_create_favorites.up.sql")
	require.NoError(t, err)

	sql := string(body)
	for _, ref := range []string{"REFERENCES users (id)", "REFERENCES characters (id)",
		"REFERENCES planets (id)", "REFERENCES vehicles (id)"} {
		assert.Contains(t, sql, ref)
	}
}

// id и внешние ключи вмещают uint из gorm-моделей
func TestFS_IDsAreBigint(t *testing.T) {
	for _, name := range []string{"000001_create_catalog.up.sql", "000002_create_favorites.up.sql"} {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		for _, line := range strings.Split(string(body), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "id ") {
				assert.Contains(t, line, "BIGSERIAL", "%s: %s", name, line)
			}
			if strings.Contains(line, "REFERENCES") {
				assert.Contains(t, line, "BIGINT", "%s: %s", name, line)
			}
		}
	}
}
