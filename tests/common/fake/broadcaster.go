//go:build unit

package fake

import (
	"context"

	"sneakerdrop/internal/events"
)

// Broadcaster records events in call order.
type Broadcaster struct {
	Created   []events.ReservationCreated
	Completed []events.ReservationCompleted
	Expired   []events.ReservationExpired
	Stock     []events.StockUpdated
	Recovered []events.StockRecovered
	Drops     []events.DropCreated
	Updates   []events.DropUpdated
	Deletes   []events.DropDeleted
	Order     []string
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

func (b *Broadcaster) ReservationCreated(_ context.Context, ev events.ReservationCreated) {
	b.Created = append(b.Created, ev)
	b.Order = append(b.Order, events.TypeReservationCreated)
}

func (b *Broadcaster) ReservationCompleted(_ context.Context, ev events.ReservationCompleted) {
	b.Completed = append(b.Completed, ev)
	b.Order = append(b.Order, events.TypeReservationCompleted)
}

func (b *Broadcaster) ReservationExpired(_ context.Context, ev events.ReservationExpired) {
	b.Expired = append(b.Expired, ev)
	b.Order = append(b.Order, events.TypeReservationExpired)
}

func (b *Broadcaster) StockUpdated(_ context.Context, ev events.StockUpdated) {
	b.Stock = append(b.Stock, ev)
	b.Order = append(b.Order, events.TypeStockUpdated)
}

func (b *Broadcaster) StockRecovered(_ context.Context, ev events.StockRecovered) {
	b.Recovered = append(b.Recovered, ev)
	b.Order = append(b.Order, events.TypeStockRecovered)
}

func (b *Broadcaster) DropCreated(_ context.Context, ev events.DropCreated) {
	b.Drops = append(b.Drops, ev)
	b.Order = append(b.Order, events.TypeDropCreated)
}

func (b *Broadcaster) DropUpdated(_ context.Context, ev events.DropUpdated) {
	b.Updates = append(b.Updates, ev)
	b.Order = append(b.Order, events.TypeDropUpdated)
}

func (b *Broadcaster) DropDeleted(_ context.Context, ev events.DropDeleted) {
	b.Deletes = append(b.Deletes, ev)
	b.Order = append(b.Order, events.TypeDropDeleted)
}
