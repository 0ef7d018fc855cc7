package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GoArmGo/StarWarsAPI/internal/di"
)

func main() {
	mode := flag.String("mode", "server", "Режим запуска: server, worker, migrate, seed или export")
	flag.Parse()

	os.Exit(run(context.Background(), *mode))
}

// run возвращает код завершения процесса
func run(ctx context.Context, mode string) int {
	// bootstrap-логгер нужен, пока конфигурация не загружена
	bootstrap := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("mode", mode)

	application, err := di.BuildApp(ctx, mode)
	if err != nil {
		bootstrap.Error("failed to build app", "error", err)
		return 1
	}

	appLog := application.LoggerIns().With("mode", mode)
	if err := application.Run(ctx, mode); err != nil {
		appLog.Error("application run failed", "error", err)
		return 1
	}

	appLog.Info("application stopped")
	return 0
}
