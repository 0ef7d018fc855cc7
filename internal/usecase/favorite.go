package usecase

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// AddFavoriteInput — входные данные для добавления в избранное.
// Нулевой id означает, что поле не передано.
type AddFavoriteInput struct {
	UserID      uint
	CharacterID uint
	PlanetID    uint
	VehicleID   uint
}

// target выбирает цель по приоритету character > planet > vehicle,
// остальные переданные id игнорируются
func (in AddFavoriteInput) target() (domain.FavoriteKind, uint, bool) {
	switch {
	case in.CharacterID != 0:
		return domain.FavoriteKindCharacter, in.CharacterID, true
	case in.PlanetID != 0:
		return domain.FavoriteKindPlanet, in.PlanetID, true
	case in.VehicleID != 0:
		return domain.FavoriteKindVehicle, in.VehicleID, true
	}
	return "", 0, false
}

// FavoriteUseCase определяет бизнес-логику работы с избранным пользователя
type FavoriteUseCase interface {
	// AddFavorite создает одну запись избранного.
	// Без user_id возвращает domain.ErrUserRequired, без цели domain.ErrInsufficientData.
	AddFavorite(ctx context.Context, in AddFavoriteInput) (*domain.FavoriteSummary, error)

	// ListUserFavorites возвращает избранное по всем трем категориям,
	// domain.ErrNoFavorites, если все категории пусты.
	ListUserFavorites(ctx context.Context, userID uint) (*domain.UserFavorites, error)

	// DeleteFavorite удаляет запись по (user_id, id цели), domain.ErrNotFound, если ее нет
	DeleteFavorite(ctx context.Context, kind domain.FavoriteKind, userID, targetID uint) error
}
