package storage

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

func (s *GormStorage) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return listAll[domain.Character](ctx, s, "characters", "FavoriteCharacters")
}

func (s *GormStorage) GetCharacterByID(ctx context.Context, id uint) (*domain.Character, error) {
	return getByID[domain.Character](ctx, s, "characters", id, "FavoriteCharacters")
}

func (s *GormStorage) CreateCharacter(ctx context.Context, character *domain.Character) error {
	return create(ctx, s, "characters", character)
}
