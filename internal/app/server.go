package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/handler"
)

const shutdownTimeout = 30 * time.Second

func (a *App) router() http.Handler {
	return handler.NewRouter(
		a.Catalog,
		a.Favorites,
		a.DB,
		handler.RouterConfig{
			RequestTimeout: a.cfg.RequestTimeout,
			AllowedOrigins: a.cfg.CORSAllowedOrigins,
		},
		a.logger,
	)
}

// runServer запускает HTTP сервер и ждет отмены ctx
func (a *App) runServer(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.ServerPort),
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a.serve(ctx, server)
}

func (a *App) serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received, stopping HTTP server")

	// ctx уже отменен, на завершение даем отдельный таймаут
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("HTTP server stopped")
	return nil
}
