package storage

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

const (
	favoriteCharactersTable = "favorite_characters"
	favoritePlanetsTable    = "favorite_planets"
	favoriteVehiclesTable   = "favorite_vehicles"
)

func (s *GormStorage) CreateFavoriteCharacter(ctx context.Context, fav *domain.FavoriteCharacter) error {
	return create(ctx, s, favoriteCharactersTable, fav)
}

func (s *GormStorage) ListFavoriteCharactersByUser(ctx context.Context, userID uint) ([]domain.FavoriteCharacter, error) {
	return listWhere[domain.FavoriteCharacter](ctx, s, favoriteCharactersTable, map[string]interface{}{"user_id": userID})
}

// FindFavoriteCharacter ищет избранного персонажа по составному ключу (user_id, character_id)
func (s *GormStorage) FindFavoriteCharacter(ctx context.Context, userID, characterID uint) (*domain.FavoriteCharacter, error) {
	return findOne[domain.FavoriteCharacter](ctx, s, favoriteCharactersTable,
		map[string]interface{}{"user_id": userID, "character_id": characterID})
}

func (s *GormStorage) DeleteFavoriteCharacter(ctx context.Context, fav *domain.FavoriteCharacter) error {
	return remove(ctx, s, favoriteCharactersTable, fav)
}

func (s *GormStorage) CreateFavoritePlanet(ctx context.Context, fav *domain.FavoritePlanet) error {
	return create(ctx, s, favoritePlanetsTable, fav)
}

func (s *GormStorage) ListFavoritePlanetsByUser(ctx context.Context, userID uint) ([]domain.FavoritePlanet, error) {
	return listWhere[domain.FavoritePlanet](ctx, s, favoritePlanetsTable, map[string]interface{}{"user_id": userID})
}

// FindFavoritePlanet ищет избранную планету по составному ключу (user_id, planet_id)
func (s *GormStorage) FindFavoritePlanet(ctx context.Context, userID, planetID uint) (*domain.FavoritePlanet, error) {
	return findOne[domain.FavoritePlanet](ctx, s, favoritePlanetsTable,
		map[string]interface{}{"user_id": userID, "planet_id": planetID})
}

func (s *GormStorage) DeleteFavoritePlanet(ctx context.Context, fav *domain.FavoritePlanet) error {
	return remove(ctx, s, favoritePlanetsTable, fav)
}

func (s *GormStorage) CreateFavoriteVehicle(ctx context.Context, fav *domain.FavoriteVehicle) error {
	return create(ctx, s, favoriteVehiclesTable, fav)
}

func (s *GormStorage) ListFavoriteVehiclesByUser(ctx context.Context, userID uint) ([]domain.FavoriteVehicle, error) {
	return listWhere[domain.FavoriteVehicle](ctx, s, favoriteVehiclesTable, map[string]interface{}{"user_id": userID})
}

// FindFavoriteVehicle ищет избранный транспорт по составному ключу (user_id, vehicle_id)
func (s *GormStorage) FindFavoriteVehicle(ctx context.Context, userID, vehicleID uint) (*domain.FavoriteVehicle, error) {
	return findOne[domain.FavoriteVehicle](ctx, s, favoriteVehiclesTable,
		map[string]interface{}{"user_id": userID, "vehicle_id": vehicleID})
}

func (s *GormStorage) DeleteFavoriteVehicle(ctx context.Context, fav *domain.FavoriteVehicle) error {
	return remove(ctx, s, favoriteVehiclesTable, fav)
}
