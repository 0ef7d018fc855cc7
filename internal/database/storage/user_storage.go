package storage

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

var userFavorites = []string{"FavoriteCharacters", "FavoritePlanets", "FavoriteVehicles"}

// ListUsers возвращает всех пользователей вместе с их избранным
func (s *GormStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	return listAll[domain.User](ctx, s, "users", userFavorites...)
}

// GetUserByID получает пользователя по ID
func (s *GormStorage) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	return getByID[domain.User](ctx, s, "users", id, userFavorites...)
}

// CreateUser сохраняет нового пользователя; дубликат email отклоняется бд
func (s *GormStorage) CreateUser(ctx context.Context, user *domain.User) error {
	return create(ctx, s, "users", user)
}
