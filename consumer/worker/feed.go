package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-gallery-service/infra"
	"github.com/tnqbao/gau-gallery-service/infra/produce"
	"github.com/tnqbao/gau-gallery-service/provider"
)

// FeedConsumer rebuilds the cached feed whenever a mutation publishes a
// media.changed event. The rebuilt feed replaces the cached one with a
// single write; overlapping rebuilds race last-writer-wins by policy.
type FeedConsumer struct {
	channel  *amqp.Channel
	infra    *infra.Infra
	provider *provider.Provider
}

func NewFeedConsumer(channel *amqp.Channel, infra *infra.Infra, prov *provider.Provider) *FeedConsumer {
	return &FeedConsumer{
		channel:  channel,
		infra:    infra,
		provider: prov,
	}
}

func (c *FeedConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.MediaChangedQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register media changed consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Feed Consumer] Started listening on queue: %s", produce.MediaChangedQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Feed Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Feed Consumer] Channel closed")
					return
				}
				c.handleMediaChanged(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *FeedConsumer) handleMediaChanged(ctx context.Context, msg amqp.Delivery) {
	var payload produce.MediaChangedMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Feed Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Feed Consumer] Rebuilding feed after %s of %s/%d (event %s)",
		payload.Action, payload.Kind, payload.ItemID, payload.EventID)

	cards := c.provider.Aggregator.BuildFeed(ctx)
	if err := c.provider.FeedCache.Store(ctx, cards); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Feed Consumer] Failed to store rebuilt feed, requeueing")
		_ = msg.Nack(false, true)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Feed Consumer] Feed rebuilt with %d card(s)", len(cards))
	_ = msg.Ack(false)
}
