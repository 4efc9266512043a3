package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"sneakerdrop/internal/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ChannelGlobal carries every event; observers watching the whole store
	// subscribe here.
	ChannelGlobal = "drops.events"
	// per-drop channels mirror the original's per-drop rooms
	channelDropPrefix = "drop."
)

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisBroadcaster publishes lifecycle and stock notifications as JSON
// envelopes on redis pub/sub. Publishing is best-effort: errors are logged
// and swallowed so a broadcast failure never affects a committed transaction.
type RedisBroadcaster struct {
	client publisher
	logger *slog.Logger
}

func NewRedisBroadcaster(client *redis.Client, logger *slog.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, logger: logger}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (b *RedisBroadcaster) ReservationCreated(ctx context.Context, ev events.ReservationCreated) {
	b.publish(ctx, ev.DropID, events.TypeReservationCreated, ev)
}

func (b *RedisBroadcaster) ReservationCompleted(ctx context.Context, ev events.ReservationCompleted) {
	b.publish(ctx, ev.DropID, events.TypeReservationCompleted, ev)
}

func (b *RedisBroadcaster) ReservationExpired(ctx context.Context, ev events.ReservationExpired) {
	b.publish(ctx, ev.DropID, events.TypeReservationExpired, ev)
}

func (b *RedisBroadcaster) StockUpdated(ctx context.Context, ev events.StockUpdated) {
	b.publish(ctx, ev.DropID, events.TypeStockUpdated, ev)
}

func (b *RedisBroadcaster) StockRecovered(ctx context.Context, ev events.StockRecovered) {
	b.publish(ctx, ev.DropID, events.TypeStockRecovered, ev)
}

func (b *RedisBroadcaster) DropCreated(ctx context.Context, ev events.DropCreated) {
	b.publish(ctx, ev.DropID, events.TypeDropCreated, ev)
}

func (b *RedisBroadcaster) DropUpdated(ctx context.Context, ev events.DropUpdated) {
	b.publish(ctx, ev.DropID, events.TypeDropUpdated, ev)
}

func (b *RedisBroadcaster) DropDeleted(ctx context.Context, ev events.DropDeleted) {
	b.publish(ctx, ev.DropID, events.TypeDropDeleted, ev)
}

func (b *RedisBroadcaster) publish(ctx context.Context, dropID uuid.UUID, eventType string, payload any) {
	body, err := json.Marshal(envelope{Type: eventType, Payload: payload})
	if err != nil {
		b.logger.Error("failed to marshal event", "type", eventType, "error", err)
		return
	}

	for _, channel := range []string{ChannelGlobal, channelDropPrefix + dropID.String()} {
		if err := b.client.Publish(ctx, channel, body).Err(); err != nil {
			b.logger.Warn("failed to publish event",
				"type", eventType,
				"channel", channel,
				"error", err)
		}
	}
}
