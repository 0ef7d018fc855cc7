package ports

import (
	"context"

	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
)

// FavoriteEventPublisher определяет методы для публикации событий об изменении избранного
// Этот интерфейс используется бизнес-логикой избранного
type FavoriteEventPublisher interface {
	PublishFavoriteEvent(ctx context.Context, payload payloads.FavoriteEventPayload) error
}

// FavoriteEventConsumer определяет методы для потребления событий избранного
// будет использоваться воркером для получения событий из очереди
type FavoriteEventConsumer interface {
	// StartConsumingFavoriteEvents начинает прослушивание очереди
	// принимает функцию-обработчик, которая будет вызываться для каждого полученного сообщения
	StartConsumingFavoriteEvents(ctx context.Context, handler func(context.Context, payloads.FavoriteEventPayload) error) error
}
