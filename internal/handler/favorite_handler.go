package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/serializer"
	"github.com/GoArmGo/StarWarsAPI/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// FavoriteHandler обрабатывает HTTP-запросы для избранного пользователя.
type FavoriteHandler struct {
	favorites usecase.FavoriteUseCase
	logger    *slog.Logger
}

// NewFavoriteHandler создаёт новый экземпляр FavoriteHandler.
func NewFavoriteHandler(uc usecase.FavoriteUseCase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: uc, logger: logger}
}

// addFavoriteRequest: отсутствующий или нулевой id считается не переданным
type addFavoriteRequest struct {
	UserID      uint `json:"user_id"`
	CharacterID uint `json:"character_id"`
	PlanetID    uint `json:"planet_id"`
	VehicleID   uint `json:"vehicle_id"`
}

// AddFavorite обрабатывает POST /favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		respondWithAPIError(w, apiErr, h.logger)
		return
	}

	summary, err := h.favorites.AddFavorite(r.Context(), usecase.AddFavoriteInput{
		UserID:      req.UserID,
		CharacterID: req.CharacterID,
		PlanetID:    req.PlanetID,
		VehicleID:   req.VehicleID,
	})
	switch {
	case errors.Is(err, domain.ErrUserRequired):
		respondWithMsg(w, http.StatusNotFound, "User not found", h.logger)
	case errors.Is(err, domain.ErrInsufficientData):
		respondWithMsg(w, http.StatusNotFound, "Insufficient data", h.logger)
	case err != nil:
		logFor(r, h.logger).Error("failed to add favorite", "user_id", req.UserID, "error", err)
		respondWithInternalError(w, err, h.logger)
	default:
		respondWithJSON(w, http.StatusCreated, serializer.FavoriteCreated(*summary), h.logger)
	}
}

// ListUserFavorites обрабатывает GET /favorites/{user_id}
func (h *FavoriteHandler) ListUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		respondWithMsg(w, http.StatusNotFound, "You have no favorites", h.logger)
		return
	}

	favs, err := h.favorites.ListUserFavorites(r.Context(), userID)
	switch {
	case errors.Is(err, domain.ErrNoFavorites):
		respondWithMsg(w, http.StatusNotFound, "You have no favorites", h.logger)
	case err != nil:
		logFor(r, h.logger).Error("failed to list favorites", "user_id", userID, "error", err)
		respondWithInternalError(w, err, h.logger)
	default:
		respondWithJSON(w, http.StatusOK, serializer.NewUserFavorites(*favs), h.logger)
	}
}

// DeleteFavorite обрабатывает DELETE /favorite/{kind}/{user_id}/{target_id}
func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseFavoriteKind(chi.URLParam(r, "kind"))
	if !ok {
		respondWithAPIError(w, newAPIError(http.StatusNotFound, "Not found"), h.logger)
		return
	}
	notFound := "Favorite " + string(kind) + " not found"

	userID, okUser := pathID(r, "user_id")
	targetID, okTarget := pathID(r, "target_id")
	if !okUser || !okTarget {
		respondWithMsg(w, http.StatusNotFound, notFound, h.logger)
		return
	}

	err := h.favorites.DeleteFavorite(r.Context(), kind, userID, targetID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithMsg(w, http.StatusNotFound, notFound, h.logger)
	case err != nil:
		logFor(r, h.logger).Error("failed to delete favorite", "kind", kind, "user_id", userID, "target_id", targetID, "error", err)
		respondWithInternalError(w, err, h.logger)
	default:
		respondWithMsg(w, http.StatusOK, "Favorite "+string(kind)+" deleted", h.logger)
	}
}
