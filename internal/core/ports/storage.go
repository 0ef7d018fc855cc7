package ports

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// Все методы Get*/Find* возвращают (nil, nil), если запись не найдена.

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id uint) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

// CharacterStorage определяет методы для взаимодействия с хранилищем персонажей
type CharacterStorage interface {
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	GetCharacterByID(ctx context.Context, id uint) (*domain.Character, error)
	CreateCharacter(ctx context.Context, character *domain.Character) error
}

// PlanetStorage определяет методы для взаимодействия с хранилищем планет
type PlanetStorage interface {
	ListPlanets(ctx context.Context) ([]domain.Planet, error)
	GetPlanetByID(ctx context.Context, id uint) (*domain.Planet, error)
	CreatePlanet(ctx context.Context, planet *domain.Planet) error
}

// VehicleStorage определяет методы для взаимодействия с хранилищем транспорта
type VehicleStorage interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, id uint) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
}

// FavoriteStorage определяет методы для работы с тремя таблицами избранного
type FavoriteStorage interface {
	CreateFavoriteCharacter(ctx context.Context, fav *domain.FavoriteCharacter) error
	ListFavoriteCharactersByUser(ctx context.Context, userID uint) ([]domain.FavoriteCharacter, error)
	FindFavoriteCharacter(ctx context.Context, userID, characterID uint) (*domain.FavoriteCharacter, error)
	DeleteFavoriteCharacter(ctx context.Context, fav *domain.FavoriteCharacter) error

	CreateFavoritePlanet(ctx context.Context, fav *domain.FavoritePlanet) error
	ListFavoritePlanetsByUser(ctx context.Context, userID uint) ([]domain.FavoritePlanet, error)
	FindFavoritePlanet(ctx context.Context, userID, planetID uint) (*domain.FavoritePlanet, error)
	DeleteFavoritePlanet(ctx context.Context, fav *domain.FavoritePlanet) error

	CreateFavoriteVehicle(ctx context.Context, fav *domain.FavoriteVehicle) error
	ListFavoriteVehiclesByUser(ctx context.Context, userID uint) ([]domain.FavoriteVehicle, error)
	FindFavoriteVehicle(ctx context.Context, userID, vehicleID uint) (*domain.FavoriteVehicle, error)
	DeleteFavoriteVehicle(ctx context.Context, fav *domain.FavoriteVehicle) error
}

// CatalogStorage объединяет хранилища базовых сущностей
type CatalogStorage interface {
	UserStorage
	CharacterStorage
	PlanetStorage
	VehicleStorage
}

// SnapshotReader читает все таблицы целиком для выгрузки
type SnapshotReader interface {
	ReadDataset(ctx context.Context) (*domain.Dataset, error)
}

// DatasetSource — источник данных для начального наполнения бд
// (json-файл, объект в S3, SWAPI)
type DatasetSource interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

// DatasetSink — место назначения выгрузки (json-файл, объект в S3)
type DatasetSink interface {
	SaveDataset(ctx context.Context, dataset *domain.Dataset) error
}
