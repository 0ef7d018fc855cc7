package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/StarWarsAPI/internal/adapter/seedfile"
	"github.com/GoArmGo/StarWarsAPI/internal/adapter/storage/minio"
	"github.com/GoArmGo/StarWarsAPI/internal/adapter/swapi"
	"github.com/GoArmGo/StarWarsAPI/internal/app"
	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
	"github.com/GoArmGo/StarWarsAPI/internal/database/client"
	"github.com/GoArmGo/StarWarsAPI/internal/database/storage"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/GoArmGo/StarWarsAPI/internal/rabbitmq"
	"github.com/GoArmGo/StarWarsAPI/internal/usecase"
)

// BuildApp инициализирует зависимости, нужные режиму mode, и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	components, err := buildComponents(ctx, cfg, mode, slogger)
	if err != nil {
		return nil, err
	}

	slogger.Info("all dependencies initialized", "mode", mode)
	return app.NewApp(cfg, slogger, components), nil
}

func buildComponents(ctx context.Context, cfg *config.Config, mode string, slogger *slog.Logger) (c app.Components, err error) {
	// при ошибке закрываем то, что уже успели открыть
	defer func() {
		if err != nil {
			for i := len(c.Closers) - 1; i >= 0; i-- {
				c.Closers[i]()
			}
		}
	}()

	// 2. Инициализация клиента бд
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return c, err
	}
	c.DB = dbClient
	c.Closers = append(c.Closers, func() { _ = dbClient.Close() })

	// 3. Инициализация хранилищ
	gormStorage := storage.NewGormStorage(dbClient.Gorm, slogger)
	snapshotStorage := storage.NewSnapshotStorage(dbClient.DB, slogger)

	// 4. RabbitMQ: без RABBITMQ_URL события только пишутся в лог
	var publisher ports.FavoriteEventPublisher = rabbitmq.NewNopPublisher(slogger)
	if cfg.EventsEnabled() && (mode == app.ModeServer || mode == app.ModeWorker) {
		rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return c, err
		}
		c.Closers = append(c.Closers, rabbitMQClient.Close)
		publisher = rabbitMQClient
		c.Consumer = rabbitMQClient
	}

	// 5. Источник и приемник снимков
	switch mode {
	case app.ModeSeed:
		c.SeedSource, err = seedSource(ctx, cfg, slogger)
	case app.ModeExport:
		c.ExportSink, err = exportSink(ctx, cfg, slogger)
	}
	if err != nil {
		return c, err
	}

	// 6. Инициализация бизнес-логики (usecases)
	c.Catalog = usecase.NewCatalogUseCase(gormStorage, slogger)
	c.Favorites = usecase.NewFavoriteUseCase(gormStorage, publisher, slogger)
	c.Seed = usecase.NewSeedUseCase(gormStorage, snapshotStorage, slogger)

	return c, nil
}

func seedSource(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (ports.DatasetSource, error) {
	switch cfg.Seed.Source {
	case "s3":
		return minio.NewMinioClient(ctx, cfg, slogger)
	case "swapi":
		return swapi.NewClient(cfg, slogger), nil
	case "file":
		return seedfile.NewFile(cfg.Seed.File, slogger), nil
	default:
		return nil, fmt.Errorf("unknown SEED_SOURCE %q", cfg.Seed.Source)
	}
}

func exportSink(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (ports.DatasetSink, error) {
	switch cfg.Seed.ExportTarget {
	case "s3":
		return minio.NewMinioClient(ctx, cfg, slogger)
	case "file":
		return seedfile.NewFile(cfg.Seed.ExportFile, slogger), nil
	default:
		return nil, fmt.Errorf("unknown EXPORT_TARGET %q", cfg.Seed.ExportTarget)
	}
}
