package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
	"github.com/GoArmGo/StarWarsAPI/internal/database/client"
	"github.com/GoArmGo/StarWarsAPI/internal/usecase"
)

// Режимы запуска
const (
	ModeServer  = "server"
	ModeWorker  = "worker"
	ModeMigrate = "migrate"
	ModeSeed    = "seed"
	ModeExport  = "export"
)

// Components содержит собранные зависимости приложения.
// Поля, не нужные выбранному режиму, могут быть nil.
type Components struct {
	DB        *client.Client
	Catalog   usecase.CatalogUseCase
	Favorites usecase.FavoriteUseCase
	Seed      usecase.SeedUseCase

	SeedSource ports.DatasetSource
	ExportSink ports.DatasetSink
	Consumer   ports.FavoriteEventConsumer

	// Closers вызываются при завершении в обратном порядке
	Closers []func()
}

type App struct {
	cfg    *config.Config
	logger *slog.Logger
	Components
}

func NewApp(cfg *config.Config, logger *slog.Logger, c Components) *App {
	return &App{cfg: cfg, logger: logger, Components: c}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run выполняет выбранный режим. server и worker работают до SIGINT/SIGTERM,
// остальные режимы завершаются сами.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.Shutdown()

	a.logger.Info("running application", "mode", mode)

	switch mode {
	case ModeServer, ModeSeed, ModeExport:
		if a.cfg.AutoMigrate {
			if err := a.DB.Migrate(ctx); err != nil {
				return err
			}
		}
	}

	switch mode {
	case ModeServer:
		return a.runServer(ctx)
	case ModeWorker:
		return a.runWorker(ctx)
	case ModeMigrate:
		return a.DB.Migrate(ctx)
	case ModeSeed:
		return a.runSeed(ctx)
	case ModeExport:
		return a.runExport(ctx)
	default:
		return fmt.Errorf("unknown mode %q (use server, worker, migrate, seed or export)", mode)
	}
}

func (a *App) runSeed(ctx context.Context) error {
	start := time.Now()
	report, err := a.Seed.Seed(ctx, a.SeedSource)
	if err != nil {
		return fmt.Errorf("seed from %s: %w", a.cfg.Seed.Source, err)
	}
	a.logger.Info("seed finished",
		"source", a.cfg.Seed.Source,
		"report", report,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (a *App) runExport(ctx context.Context) error {
	start := time.Now()
	report, err := a.Seed.Export(ctx, a.ExportSink)
	if err != nil {
		return fmt.Errorf("export to %s: %w", a.cfg.Seed.ExportTarget, err)
	}
	a.logger.Info("export finished",
		"target", a.cfg.Seed.ExportTarget,
		"report", report,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() {
	for i := len(a.Closers) - 1; i >= 0; i-- {
		a.Closers[i]()
	}
	a.Closers = nil
	a.logger.Info("application resources released")
}
