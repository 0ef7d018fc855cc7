package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
	"github.com/goccy/go-json"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client представляет собой клиент RabbitMQ для событий избранного
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient подключается к RabbitMQ и объявляет очередь событий
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	client := &Client{logger: logger}

	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	client.conn = conn

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open RabbitMQ channel: %w", err)
	}
	client.channel = ch

	// Идемпотентно: очередь создается, только если ее еще нет
	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName, // name
		true,                           // durable
		false,                          // delete when unused
		false,                          // exclusive
		false,                          // no-wait
		nil,                            // arguments
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("declare queue %q: %w", cfg.RabbitMQ.RabbitMQQueueName, err)
	}
	client.queue = q

	logger.Info("connected to RabbitMQ", "queue", q.Name, "messages", q.Messages)
	return client, nil
}

// Close закрывает канал и соединение RabbitMQ
func (c *Client) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("failed to close RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("failed to close RabbitMQ connection", "error", err)
		}
	}
	c.logger.Info("RabbitMQ connection closed")
}

// PublishFavoriteEvent публикует событие избранного в очередь.
// Реализует ports.FavoriteEventPublisher.
func (c *Client) PublishFavoriteEvent(ctx context.Context, payload payloads.FavoriteEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal favorite event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    payload.OccurredAt,
			Type:         payload.Action,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish favorite event: %w", err)
	}
	c.logger.Debug("favorite event published", "queue", c.queue.Name, "action", payload.Action)
	return nil
}

// StartConsumingFavoriteEvents начинает потребление сообщений из очереди.
// Реализует ports.FavoriteEventConsumer.
func (c *Client) StartConsumingFavoriteEvents(ctx context.Context, handler func(context.Context, payloads.FavoriteEventPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("RabbitMQ delivery channel closed, stopping consumer")
					return
				}
				c.dispatch(ctx, msg, handler)
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping consumer")
				return
			}
		}
	}()

	return nil
}

// acknowledger: часть amqp.Delivery, нужная для подтверждения
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) dispatch(ctx context.Context, msg amqp.Delivery, handler func(context.Context, payloads.FavoriteEventPayload) error) {
	handleDelivery(ctx, c.logger, msg.Body, &msg, handler)
}

// handleDelivery разбирает сообщение и вызывает обработчик.
// Битое сообщение отклоняется без возврата в очередь, ошибка обработчика возвращает его в очередь.
func handleDelivery(
	ctx context.Context,
	logger *slog.Logger,
	body []byte,
	ack acknowledger,
	handler func(context.Context, payloads.FavoriteEventPayload) error,
) {
	var payload payloads.FavoriteEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Warn("dropping malformed message", "error", err, "body", string(body))
		if err := ack.Nack(false, false); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	if err := handler(ctx, payload); err != nil {
		logger.Error("failed to process favorite event", "action", payload.Action, "favorite_id", payload.FavoriteID, "error", err)
		if err := ack.Nack(false, true); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	if err := ack.Ack(false); err != nil {
		logger.Error("failed to ack message", "error", err)
	}
}

// NopPublisher используется, когда RabbitMQ не настроен: события только пишутся в лог
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) PublishFavoriteEvent(_ context.Context, payload payloads.FavoriteEventPayload) error {
	p.logger.Debug("favorite event not published, RabbitMQ is disabled",
		"action", payload.Action,
		"favorite_id", payload.FavoriteID,
	)
	return nil
}
