// Package dbtest поднимает изолированную sqlite-бд для тестов.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/database/client"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
)

// New создает файл sqlite во временном каталоге теста, применяет схему
// и закрывает соединение по завершении теста.
func New(t testing.TB) *client.Client {
	t.Helper()

	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "starwars.db")}

	c, err := client.NewClient(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if err := c.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return c
}
