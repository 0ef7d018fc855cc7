package storage

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

func (s *GormStorage) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	return listAll[domain.Planet](ctx, s, "planets", "FavoritePlanets")
}

func (s *GormStorage) GetPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	return getByID[domain.Planet](ctx, s, "planets", id, "FavoritePlanets")
}

func (s *GormStorage) CreatePlanet(ctx context.Context, planet *domain.Planet) error {
	return create(ctx, s, "planets", planet)
}
