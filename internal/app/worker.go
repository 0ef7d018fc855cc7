package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
)

// runWorker потребляет события избранного из RabbitMQ до отмены ctx
func (a *App) runWorker(ctx context.Context) error {
	if a.Consumer == nil {
		return errors.New("worker mode requires RABBITMQ_URL")
	}

	if err := a.Consumer.StartConsumingFavoriteEvents(ctx, logFavoriteEvent(a.logger)); err != nil {
		return fmt.Errorf("start RabbitMQ consumer: %w", err)
	}
	a.logger.Info("worker started, waiting for favorite events")

	<-ctx.Done()
	a.logger.Info("shutdown signal received, stopping worker")
	return nil
}

// logFavoriteEvent пишет событие в структурированный лог
func logFavoriteEvent(logger *slog.Logger) func(context.Context, payloads.FavoriteEventPayload) error {
	return func(_ context.Context, p payloads.FavoriteEventPayload) error {
		switch p.Action {
		case payloads.FavoriteActionAdded, payloads.FavoriteActionDeleted:
		default:
			// повторная доставка не поможет, сообщение подтверждается
			logger.Warn("skipping favorite event with unknown action", "action", p.Action)
			return nil
		}
		logger.Info("favorite event",
			"action", p.Action,
			"kind", p.Kind,
			"favorite_id", p.FavoriteID,
			"user_id", p.UserID,
			"target_id", p.TargetID,
			"occurred_at", p.OccurredAt,
		)
		return nil
	}
}
