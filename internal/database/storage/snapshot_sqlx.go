package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/jmoiron/sqlx"
)

// SnapshotStorage читает таблицы целиком через sqlx для выгрузки снимка
type SnapshotStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSnapshotStorage(db *sqlx.DB, logger *slog.Logger) *SnapshotStorage {
	return &SnapshotStorage{db: db, logger: logger}
}

// ReadDataset выбирает все строки всех семи таблиц в порядке id
func (s *SnapshotStorage) ReadDataset(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()
	ds := &domain.Dataset{}

	queries := []struct {
		table string
		dest  interface{}
		query string
	}{
		{"users", &ds.Users, `SELECT id, name, email, password FROM users ORDER BY id`},
		{"characters", &ds.Characters, `SELECT id, name, height, mass, hair_color, skin_color, eye_color, gender FROM characters ORDER BY id`},
		{"planets", &ds.Planets, `SELECT id, name, climate, diameter, gravity, orbital_period, population, rotation_period, surface_water, terrain FROM planets ORDER BY id`},
		{"vehicles", &ds.Vehicles, `SELECT id, name, model, cargo_capacity, consumables, cost_in_credits, vehicle_class, manufacturer, passengers FROM vehicles ORDER BY id`},
		{"favorite_characters", &ds.FavoriteCharacters, `SELECT id, character_id, user_id FROM favorite_characters ORDER BY id`},
		{"favorite_planets", &ds.FavoritePlanets, `SELECT id, planet_id, user_id FROM favorite_planets ORDER BY id`},
		{"favorite_vehicles", &ds.FavoriteVehicles, `SELECT id, vehicle_id, user_id FROM favorite_vehicles ORDER BY id`},
	}

	for _, q := range queries {
		if err := s.db.SelectContext(ctx, q.dest, q.query); err != nil {
			s.logger.Error("failed to read table for snapshot", "table", q.table, "error", err)
			return nil, fmt.Errorf("read %s: %w", q.table, err)
		}
	}

	s.logger.Info("dataset snapshot read",
		"users", len(ds.Users),
		"characters", len(ds.Characters),
		"planets", len(ds.Planets),
		"vehicles", len(ds.Vehicles),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}
