package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

type endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type sitemapResponse struct {
	Endpoints []endpoint `json:"endpoints"`
}

// routePath убирает регулярные выражения из параметров: /users/{id:[0-9]+} -> /users/{id}
func routePath(route string) string {
	var b strings.Builder
	depth := 0
	skipping := false
	for _, r := range route {
		switch {
		case r == '{':
			depth++
		case r == '}':
			depth--
			if depth == 0 {
				skipping = false
			}
		case r == ':' && depth == 1:
			skipping = true
			continue
		}
		if skipping && depth > 0 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sitemap перечисляет все зарегистрированные маршруты роутера
func Sitemap(routes chi.Routes, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eps := make([]endpoint, 0)
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			eps = append(eps, endpoint{Method: method, Path: routePath(route)})
			return nil
		})
		if err != nil {
			logger.Error("failed to walk routes", "error", err)
			respondWithInternalError(w, err, logger)
			return
		}

		sort.Slice(eps, func(i, j int) bool {
			if eps[i].Path != eps[j].Path {
				return eps[i].Path < eps[j].Path
			}
			return eps[i].Method < eps[j].Method
		})
		respondWithJSON(w, http.StatusOK, sitemapResponse{Endpoints: eps}, logger)
	}
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health обрабатывает GET /health
func Health(p Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.Warn("health check failed", "error", err)
			respondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()}, logger)
			return
		}
		respondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"}, logger)
	}
}
