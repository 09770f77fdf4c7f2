package workers

import (
	"context"
	"log/slog"
	"time"

	"sockchat/contract"
	"sockchat/domain/event"
	"sockchat/observability"
)

// Ensure *EventFanout implements the contract.Worker interface at compile time.
var _ contract.Worker = (*EventFanout)(nil)

// EventFanout drains the broadcast channel and delivers each event to every
// live connection sink.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across connections, durability, or retries. EventFanout is not a
// message broker. Delivery is sequential per event so each individual sink
// observes broadcasts in emission order; a slow sink is cut off by the
// per-sink timeout instead of stalling the fan-out loop forever.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	metrics     *observability.Metrics
	events      <-chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	metrics *observability.Metrics, events <-chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		metrics:     metrics,
		events:      events,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fan-out")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Broadcast channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout delivers one event to every live sink.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.registry.All() {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected broadcast", "event", evt.Name(), "error", err)
		}
		cancel()
	}
	w.metrics.IncrBroadcasts()
}
