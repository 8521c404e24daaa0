package produce

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	MediaExchange          = "media.exchange"
	MediaChangedQueue      = "media.changed"
	MediaChangedRoutingKey = "media.changed"
)

// MediaChangedMessage is published after every successful admin mutation so
// the consumer can rebuild the cached feed.
type MediaChangedMessage struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`      // "photo", "letter" or "logo"
	ItemID    uint   `json:"item_id"`
	Action    string `json:"action"`    // "create", "update" or "delete"
	Timestamp int64  `json:"timestamp"`
}

// MediaProduceService publishes feed invalidation events.
type MediaProduceService struct {
	channel *amqp.Channel
}

func InitMediaProduceService(channel *amqp.Channel) *MediaProduceService {
	service := &MediaProduceService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		MediaExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Media exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		MediaChangedQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare MediaChanged queue: " + err.Error())
	}

	err = channel.QueueBind(
		MediaChangedQueue,
		MediaChangedRoutingKey,
		MediaExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind MediaChanged queue: " + err.Error())
	}

	return service
}

// PublishMediaChanged publishes one media change event.
func (s *MediaProduceService) PublishMediaChanged(ctx context.Context, kind string, itemID uint, action string) error {
	msg := MediaChangedMessage{
		EventID:   uuid.NewString(),
		Kind:      kind,
		ItemID:    itemID,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		MediaExchange,
		MediaChangedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
