package usecase

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
)

// SeedReport — сколько строк каждой таблицы загружено или выгружено,
// и какие таблицы пропущены.
type SeedReport struct {
	Users              int      `json:"users"`
	Characters         int      `json:"characters"`
	Planets            int      `json:"planets"`
	Vehicles           int      `json:"vehicles"`
	FavoriteCharacters int      `json:"favorite_characters"`
	FavoritePlanets    int      `json:"favorite_planets"`
	FavoriteVehicles   int      `json:"favorite_vehicles"`
	Skipped            []string `json:"skipped,omitempty"`
}

// SeedUseCase наполняет бд из внешнего набора данных и выгружает ее снимок
type SeedUseCase interface {
	// Seed загружает набор из source. Таблица, в которой уже есть строки, пропускается.
	// id из набора заменяются на назначенные бд; избранное, ссылающееся
	// на не загруженные в этом запуске строки, пропускается.
	Seed(ctx context.Context, source ports.DatasetSource) (SeedReport, error)

	// Export читает все таблицы и записывает снимок в sink
	Export(ctx context.Context, sink ports.DatasetSink) (SeedReport, error)
}

// SeedStorage объединяет все, что нужно для наполнения бд
type SeedStorage interface {
	ports.CatalogStorage
	ports.FavoriteStorage
}
