package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/StarWarsAPI/internal/core/ports"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// catalogUseCase implements CatalogUseCase
type catalogUseCase struct {
	storage ports.CatalogStorage
	logger  *slog.Logger
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase
func NewCatalogUseCase(storage ports.CatalogStorage, logger *slog.Logger) CatalogUseCase {
	return &catalogUseCase{storage: storage, logger: logger}
}

// found превращает (nil, nil) от хранилища в domain.ErrNotFound
func found[T any](row *T, err error, entity string, id uint) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("usecase: get %s %d: %w", entity, id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("usecase: %s %d: %w", entity, id, domain.ErrNotFound)
	}
	return row, nil
}

func (uc *catalogUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list users: %w", err)
	}
	return users, nil
}

func (uc *catalogUseCase) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	u, err := uc.storage.GetUserByID(ctx, id)
	return found(u, err, "user", id)
}

func (uc *catalogUseCase) CreateUser(ctx context.Context, user *domain.User) error {
	if err := uc.storage.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("usecase: create user: %w", err)
	}
	uc.logger.Info("user created", "user_id", user.ID)
	return nil
}

func (uc *catalogUseCase) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	chars, err := uc.storage.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list characters: %w", err)
	}
	return chars, nil
}

func (uc *catalogUseCase) GetCharacter(ctx context.Context, id uint) (*domain.Character, error) {
	c, err := uc.storage.GetCharacterByID(ctx, id)
	return found(c, err, "character", id)
}

func (uc *catalogUseCase) CreateCharacter(ctx context.Context, character *domain.Character) error {
	if err := uc.storage.CreateCharacter(ctx, character); err != nil {
		return fmt.Errorf("usecase: create character: %w", err)
	}
	uc.logger.Info("character created", "character_id", character.ID)
	return nil
}

func (uc *catalogUseCase) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	planets, err := uc.storage.ListPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list planets: %w", err)
	}
	return planets, nil
}

func (uc *catalogUseCase) GetPlanet(ctx context.Context, id uint) (*domain.Planet, error) {
	p, err := uc.storage.GetPlanetByID(ctx, id)
	return found(p, err, "planet", id)
}

func (uc *catalogUseCase) CreatePlanet(ctx context.Context, planet *domain.Planet) error {
	if err := uc.storage.CreatePlanet(ctx, planet); err != nil {
		return fmt.Errorf("usecase: create planet: %w", err)
	}
	uc.logger.Info("planet created", "planet_id", planet.ID)
	return nil
}

func (uc *catalogUseCase) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := uc.storage.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list vehicles: %w", err)
	}
	return vehicles, nil
}

func (uc *catalogUseCase) GetVehicle(ctx context.Context, id uint) (*domain.Vehicle, error) {
	v, err := uc.storage.GetVehicleByID(ctx, id)
	return found(v, err, "vehicle", id)
}

func (uc *catalogUseCase) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := uc.storage.CreateVehicle(ctx, vehicle); err != nil {
		return fmt.Errorf("usecase: create vehicle: %w", err)
	}
	uc.logger.Info("vehicle created", "vehicle_id", vehicle.ID)
	return nil
}
