package domain

import "errors"

var (
	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")

	// ErrUserRequired — в запросе на добавление избранного нет user_id.
	ErrUserRequired = errors.New("user_id is required")

	// ErrInsufficientData — не указан ни один из character_id, planet_id, vehicle_id.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNoFavorites — у пользователя нет избранного ни в одной категории.
	ErrNoFavorites = errors.New("user has no favorites")
)
