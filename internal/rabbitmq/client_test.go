package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *fakeAck) Ack(bool) error {
	a.acked = true
	return nil
}

func (a *fakeAck) Nack(_, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func TestHandleDelivery_AcksProcessedMessage(t *testing.T) {
	body := []byte(`{"action":"favorite.added","kind":"planet","favorite_id":3,"user_id":1,"target_id":7,"occurred_at":"2024-05-04T10:00:00Z"}`)
	ack := &fakeAck{}

	var got payloads.FavoriteEventPayload
	handleDelivery(context.Background(), logger.Discard(), body, ack, func(_ context.Context, p payloads.FavoriteEventPayload) error {
		got = p
		return nil
	})

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	assert.Equal(t, payloads.FavoriteActionAdded, got.Action)
	assert.Equal(t, "planet", got.Kind)
	assert.Equal(t, uint(3), got.FavoriteID)
	assert.Equal(t, uint(7), got.TargetID)
	assert.True(t, got.OccurredAt.Equal(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)))
}

func TestHandleDelivery_MalformedIsDropped(t *testing.T) {
	ack := &fakeAck{}
	called := false

	handleDelivery(context.Background(), logger.Discard(), []byte(`not json`), ack, func(context.Context, payloads.FavoriteEventPayload) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestHandleDelivery_HandlerErrorRequeues(t *testing.T) {
	ack := &fakeAck{}

	handleDelivery(context.Background(), logger.Discard(), []byte(`{"action":"favorite.deleted"}`), ack, func(context.Context, payloads.FavoriteEventPayload) error {
		return errors.New("boom")
	})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
	assert.False(t, ack.acked)
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher(logger.Discard())
	require.NoError(t, p.PublishFavoriteEvent(context.Background(), payloads.FavoriteEventPayload{Action: payloads.FavoriteActionAdded}))
}
