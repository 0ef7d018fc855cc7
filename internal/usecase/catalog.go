package usecase

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// CatalogUseCase определяет бизнес-логику чтения и создания базовых сущностей:
// пользователей, персонажей, планет и транспорта.
// Get* возвращает domain.ErrNotFound, если записи нет.
type CatalogUseCase interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error

	ListCharacters(ctx context.Context) ([]domain.Character, error)
	GetCharacter(ctx context.Context, id uint) (*domain.Character, error)
	CreateCharacter(ctx context.Context, character *domain.Character) error

	ListPlanets(ctx context.Context) ([]domain.Planet, error)
	GetPlanet(ctx context.Context, id uint) (*domain.Planet, error)
	CreatePlanet(ctx context.Context, planet *domain.Planet) error

	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
}
