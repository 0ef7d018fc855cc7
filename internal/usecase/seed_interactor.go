package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// seedUseCase implements SeedUseCase
type seedUseCase struct {
	storage SeedStorage
	reader  ports.SnapshotReader
	logger  *slog.Logger
}

// NewSeedUseCase создает новый экземпляр SeedUseCase
func NewSeedUseCase(storage SeedStorage, reader ports.SnapshotReader, logger *slog.Logger) SeedUseCase {
	return &seedUseCase{storage: storage, reader: reader, logger: logger}
}

// idMap сопоставляет id из набора данных с id, назначенными бд
type idMap map[uint]uint

// seedRows вставляет строки одной таблицы, если она пуста.
// Возвращает nil-карту, когда таблица пропущена.
func seedRows[T any](
	ctx context.Context,
	uc *seedUseCase,
	table string,
	rows []T,
	list func(context.Context) ([]T, error),
	id func(*T) *uint,
	create func(context.Context, *T) error,
	report *SeedReport,
	count *int,
) (idMap, error) {
	existing, err := list(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: check %s before seeding: %w", table, err)
	}
	if len(existing) > 0 {
		uc.logger.Info("table is not empty, skipping", "table", table, "rows", len(existing))
		report.Skipped = append(report.Skipped, table)
		return nil, nil
	}

	ids := make(idMap, len(rows))
	for i := range rows {
		row := rows[i]
		src := *id(&row)
		*id(&row) = 0
		if err := create(ctx, &row); err != nil {
			return nil, fmt.Errorf("usecase: seed %s row %d: %w", table, i, err)
		}
		if src != 0 {
			ids[src] = *id(&row)
		}
		*count++
	}
	return ids, nil
}

func (uc *seedUseCase) Seed(ctx context.Context, source ports.DatasetSource) (SeedReport, error) {
	start := time.Now()
	var report SeedReport

	ds, err := source.LoadDataset(ctx)
	if err != nil {
		return report, fmt.Errorf("usecase: load dataset: %w", err)
	}

	users, err := seedRows(ctx, uc, "users", ds.Users, uc.storage.ListUsers,
		func(u *domain.User) *uint { return &u.ID }, uc.storage.CreateUser, &report, &report.Users)
	if err != nil {
		return report, err
	}
	chars, err := seedRows(ctx, uc, "characters", ds.Characters, uc.storage.ListCharacters,
		func(c *domain.Character) *uint { return &c.ID }, uc.storage.CreateCharacter, &report, &report.Characters)
	if err != nil {
		return report, err
	}
	planets, err := seedRows(ctx, uc, "planets", ds.Planets, uc.storage.ListPlanets,
		func(p *domain.Planet) *uint { return &p.ID }, uc.storage.CreatePlanet, &report, &report.Planets)
	if err != nil {
		return report, err
	}
	vehicles, err := seedRows(ctx, uc, "vehicles", ds.Vehicles, uc.storage.ListVehicles,
		func(v *domain.Vehicle) *uint { return &v.ID }, uc.storage.CreateVehicle, &report, &report.Vehicles)
	if err != nil {
		return report, err
	}

	// избранное загружается, только если пользователь и цель вставлены в этом запуске
	skippedFavorites := 0
	for _, f := range ds.FavoriteCharacters {
		u, okU := users[f.UserID]
		c, okC := chars[f.CharacterID]
		if !okU || !okC {
			skippedFavorites++
			continue
		}
		if err := uc.storage.CreateFavoriteCharacter(ctx, &domain.FavoriteCharacter{UserID: u, CharacterID: c}); err != nil {
			return report, fmt.Errorf("usecase: seed favorite_characters: %w", err)
		}
		report.FavoriteCharacters++
	}
	for _, f := range ds.FavoritePlanets {
		u, okU := users[f.UserID]
		p, okP := planets[f.PlanetID]
		if !okU || !okP {
			skippedFavorites++
			continue
		}
		if err := uc.storage.CreateFavoritePlanet(ctx, &domain.FavoritePlanet{UserID: u, PlanetID: p}); err != nil {
			return report, fmt.Errorf("usecase: seed favorite_planets: %w", err)
		}
		report.FavoritePlanets++
	}
	for _, f := range ds.FavoriteVehicles {
		u, okU := users[f.UserID]
		v, okV := vehicles[f.VehicleID]
		if !okU || !okV {
			skippedFavorites++
			continue
		}
		if err := uc.storage.CreateFavoriteVehicle(ctx, &domain.FavoriteVehicle{UserID: u, VehicleID: v}); err != nil {
			return report, fmt.Errorf("usecase: seed favorite_vehicles: %w", err)
		}
		report.FavoriteVehicles++
	}

	uc.logger.Info("seeding finished",
		"users", report.Users,
		"characters", report.Characters,
		"planets", report.Planets,
		"vehicles", report.Vehicles,
		"favorites", report.FavoriteCharacters+report.FavoritePlanets+report.FavoriteVehicles,
		"skipped_tables", report.Skipped,
		"skipped_favorites", skippedFavorites,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (uc *seedUseCase) Export(ctx context.Context, sink ports.DatasetSink) (SeedReport, error) {
	start := time.Now()

	ds, err := uc.reader.ReadDataset(ctx)
	if err != nil {
		return SeedReport{}, fmt.Errorf("usecase: read dataset: %w", err)
	}
	if err := sink.SaveDataset(ctx, ds); err != nil {
		return SeedReport{}, fmt.Errorf("usecase: save dataset: %w", err)
	}

	report := SeedReport{
		Users:              len(ds.Users),
		Characters:         len(ds.Characters),
		Planets:            len(ds.Planets),
		Vehicles:           len(ds.Vehicles),
		FavoriteCharacters: len(ds.FavoriteCharacters),
		FavoritePlanets:    len(ds.FavoritePlanets),
		FavoriteVehicles:   len(ds.FavoriteVehicles),
	}
	uc.logger.Info("export finished",
		"users", report.Users,
		"characters", report.Characters,
		"planets", report.Planets,
		"vehicles", report.Vehicles,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}
