package storage

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

func (s *GormStorage) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return listAll[domain.Vehicle](ctx, s, "vehicles", "FavoriteVehicles")
}

func (s *GormStorage) GetVehicleByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	return getByID[domain.Vehicle](ctx, s, "vehicles", id, "FavoriteVehicles")
}

func (s *GormStorage) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	return create(ctx, s, "vehicles", vehicle)
}
