package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
)

// favoriteUseCase implements FavoriteUseCase
type favoriteUseCase struct {
	storage   ports.FavoriteStorage
	publisher ports.FavoriteEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewFavoriteUseCase создает новый экземпляр FavoriteUseCase.
// publisher получает событие о каждом добавлении и удалении.
func NewFavoriteUseCase(
	storage ports.FavoriteStorage,
	publisher ports.FavoriteEventPublisher,
	logger *slog.Logger,
) FavoriteUseCase {
	return &favoriteUseCase{
		storage:   storage,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *favoriteUseCase) AddFavorite(ctx context.Context, in AddFavoriteInput) (*domain.FavoriteSummary, error) {
	if in.UserID == 0 {
		return nil, domain.ErrUserRequired
	}

	kind, targetID, ok := in.target()
	if !ok {
		return nil, domain.ErrInsufficientData
	}

	summary := &domain.FavoriteSummary{Kind: kind, TargetID: targetID, UserID: in.UserID}

	var err error
	switch kind {
	case domain.FavoriteKindCharacter:
		fav := &domain.FavoriteCharacter{UserID: in.UserID, CharacterID: targetID}
		err = uc.storage.CreateFavoriteCharacter(ctx, fav)
		summary.ID = fav.ID
	case domain.FavoriteKindPlanet:
		fav := &domain.FavoritePlanet{UserID: in.UserID, PlanetID: targetID}
		err = uc.storage.CreateFavoritePlanet(ctx, fav)
		summary.ID = fav.ID
	case domain.FavoriteKindVehicle:
		fav := &domain.FavoriteVehicle{UserID: in.UserID, VehicleID: targetID}
		err = uc.storage.CreateFavoriteVehicle(ctx, fav)
		summary.ID = fav.ID
	}
	if err != nil {
		return nil, fmt.Errorf("usecase: add favorite %s: %w", kind, err)
	}

	uc.logger.Info("favorite added",
		"kind", kind,
		"favorite_id", summary.ID,
		"user_id", summary.UserID,
		"target_id", summary.TargetID,
	)
	uc.publish(ctx, payloads.FavoriteActionAdded, *summary)

	return summary, nil
}

func (uc *favoriteUseCase) ListUserFavorites(ctx context.Context, userID uint) (*domain.UserFavorites, error) {
	chars, err := uc.storage.ListFavoriteCharactersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list favorite characters of user %d: %w", userID, err)
	}
	planets, err := uc.storage.ListFavoritePlanetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list favorite planets of user %d: %w", userID, err)
	}
	vehicles, err := uc.storage.ListFavoriteVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list favorite vehicles of user %d: %w", userID, err)
	}

	favs := &domain.UserFavorites{Characters: chars, Planets: planets, Vehicles: vehicles}
	if favs.Empty() {
		return nil, domain.ErrNoFavorites
	}
	return favs, nil
}

func (uc *favoriteUseCase) DeleteFavorite(ctx context.Context, kind domain.FavoriteKind, userID, targetID uint) error {
	summary := domain.FavoriteSummary{Kind: kind, TargetID: targetID, UserID: userID}

	// сначала ищем запись, потом удаляем именно ее
	var err error
	switch kind {
	case domain.FavoriteKindCharacter:
		var fav *domain.FavoriteCharacter
		if fav, err = uc.storage.FindFavoriteCharacter(ctx, userID, targetID); err == nil && fav != nil {
			summary.ID = fav.ID
			err = uc.storage.DeleteFavoriteCharacter(ctx, fav)
		}
	case domain.FavoriteKindPlanet:
		var fav *domain.FavoritePlanet
		if fav, err = uc.storage.FindFavoritePlanet(ctx, userID, targetID); err == nil && fav != nil {
			summary.ID = fav.ID
			err = uc.storage.DeleteFavoritePlanet(ctx, fav)
		}
	case domain.FavoriteKindVehicle:
		var fav *domain.FavoriteVehicle
		if fav, err = uc.storage.FindFavoriteVehicle(ctx, userID, targetID); err == nil && fav != nil {
			summary.ID = fav.ID
			err = uc.storage.DeleteFavoriteVehicle(ctx, fav)
		}
	default:
		return fmt.Errorf("usecase: unknown favorite kind %q: %w", kind, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("usecase: delete favorite %s: %w", kind, err)
	}
	if summary.ID == 0 {
		return fmt.Errorf("usecase: favorite %s of user %d for %d: %w", kind, userID, targetID, domain.ErrNotFound)
	}

	uc.logger.Info("favorite deleted",
		"kind", kind,
		"favorite_id", summary.ID,
		"user_id", userID,
		"target_id", targetID,
	)
	uc.publish(ctx, payloads.FavoriteActionDeleted, summary)

	return nil
}

// publish отправляет событие; ошибка только логируется и не влияет на результат запроса
func (uc *favoriteUseCase) publish(ctx context.Context, action string, s domain.FavoriteSummary) {
	payload := payloads.FavoriteEventPayload{
		Action:     action,
		Kind:       string(s.Kind),
		FavoriteID: s.ID,
		UserID:     s.UserID,
		TargetID:   s.TargetID,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.publisher.PublishFavoriteEvent(ctx, payload); err != nil {
		uc.logger.Warn("failed to publish favorite event",
			"action", action,
			"favorite_id", s.ID,
			"error", err,
		)
	}
}
