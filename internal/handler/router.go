package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig задает параметры HTTP-слоя
type RouterConfig struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// NewRouter собирает chi-роутер со всеми маршрутами API
func NewRouter(
	catalog usecase.CatalogUseCase,
	favorites usecase.FavoriteUseCase,
	pinger Pinger,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	catalogHandler := NewCatalogHandler(catalog, logger)
	favoriteHandler := NewFavoriteHandler(favorites, logger)
	metrics := NewMetrics()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(RequestLogger(logger))
	r.Use(metrics.Middleware)
	r.Use(Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.NotFound(NotFound(logger))
	r.MethodNotAllowed(MethodNotAllowed(logger))

	r.Get("/", Sitemap(r, logger))
	r.Get("/health", Health(pinger, logger))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/users", catalogHandler.ListUsers)
	r.Post("/users", catalogHandler.CreateUser)
	r.Get("/users/{id:[0-9]+}", catalogHandler.GetUser)

	r.Get("/characters", catalogHandler.ListCharacters)
	r.Post("/characters", catalogHandler.CreateCharacter)
	r.Get("/characters/{id:[0-9]+}", catalogHandler.GetCharacter)

	r.Get("/planets", catalogHandler.ListPlanets)
	r.Post("/planets", catalogHandler.CreatePlanet)
	r.Get("/planets/{id:[0-9]+}", catalogHandler.GetPlanet)

	r.Get("/vehicles", catalogHandler.ListVehicles)
	r.Post("/vehicles", catalogHandler.CreateVehicle)
	r.Get("/vehicles/{id:[0-9]+}", catalogHandler.GetVehicle)

	r.Post("/favorites", favoriteHandler.AddFavorite)
	r.Get("/favorites/{user_id:[0-9]+}", favoriteHandler.ListUserFavorites)
	r.Delete("/favorite/{kind}/{user_id:[0-9]+}/{target_id:[0-9]+}", favoriteHandler.DeleteFavorite)

	return r
}
