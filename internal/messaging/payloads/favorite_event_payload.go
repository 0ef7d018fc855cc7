package payloads

import "time"

const (
	FavoriteActionAdded   = "favorite.added"
	FavoriteActionDeleted = "favorite.deleted"
)

// FavoriteEventPayload представляет событие добавления или удаления избранного,
// передается через RabbitMQ.
type FavoriteEventPayload struct {
	Action     string    `json:"action"`
	Kind       string    `json:"kind"`
	FavoriteID uint      `json:"favorite_id"`
	UserID     uint      `json:"user_id"`
	TargetID   uint      `json:"target_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
