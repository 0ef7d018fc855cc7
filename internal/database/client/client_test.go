package client

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantDialect string
		wantDSN     string
	}{
		{"postgres scheme", "postgres://u:p@db:5432/sw", DialectPostgres, "postgres://u:p@db:5432/sw"},
		{"postgresql scheme", "postgresql://u:p@db/sw?sslmode=disable", DialectPostgres, "postgresql://u:p@db/sw?sslmode=disable"},
		{"plain path", "/tmp/test.db", DialectSQLite, "/tmp/test.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"sqlite scheme", "sqlite:///tmp/test.db", DialectSQLite, "/tmp/test.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"existing query", "/tmp/test.db?cache=shared", DialectSQLite, "/tmp/test.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"explicit pragma kept", "/tmp/test.db?_pragma=foreign_keys(0)", DialectSQLite, "/tmp/test.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, dsn := ParseDatabaseURL(tt.in)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestNewClient_SQLiteMigrateAndPing(t *testing.T) {
	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "client.db")}

	c, err := NewClient(cfg, logger.Discard())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, DialectSQLite, c.Dialect)
	require.NoError(t, c.Migrate(context.Background()))
	// повторная миграция ничего не ломает
	require.NoError(t, c.Migrate(context.Background()))
	require.NoError(t, c.Ping(context.Background()))

	for _, table := range []string{"users", "characters", "planets", "vehicles",
		"favorite_characters", "favorite_planets", "favorite_vehicles"} {
		assert.True(t, c.Gorm.Migrator().HasTable(table), "table %s", table)
	}
}

func TestNewClient_GormLogsGoThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlog(logger.SlogConfig{Level: "info", Format: "json", Output: &buf})
	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "client.db"), LogLevel: "info"}

	c, err := NewClient(cfg, log)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.Migrate(context.Background()))

	// отсутствующая запись ожидаема и в лог не попадает
	var u domain.User
	err = c.Gorm.First(&u, "id = ?", 42).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NotContains(t, buf.String(), "record not found")

	// настоящая ошибка уходит в тот же JSON-поток
	require.Error(t, c.Gorm.Exec("SELECT * FROM starships").Error)
	out := buf.String()
	assert.Contains(t, out, "no such table")
	assert.Contains(t, out, `"component":"gorm"`)
	assert.NotContains(t, out, "\x1b[")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "{"), "non-JSON log line: %s", line)
	}
}
