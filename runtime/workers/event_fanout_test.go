package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"sockchat/contract"
	"sockchat/domain"
	"sockchat/domain/event"
	"sockchat/observability"
)

type countingSink struct {
	consumed chan event.DomainEvent
}

func (s *countingSink) Consume(ctx context.Context, evt event.DomainEvent) error {
	s.consumed <- evt
	return nil
}

type blockingSink struct{}

func (s *blockingSink) Consume(ctx context.Context, evt event.DomainEvent) error {
	<-ctx.Done()     // Waiting for timeout to trigger cancellation
	return ctx.Err() // Sending back "context deadline exceeded"
}

type stubRegistry struct {
	sinks map[domain.ConnectionID]contract.EventSink
}

func (r *stubRegistry) Subscribe(id domain.ConnectionID, sink contract.EventSink) {
	r.sinks[id] = sink
}

func (r *stubRegistry) Unsubscribe(id domain.ConnectionID) {
	delete(r.sinks, id)
}

func (r *stubRegistry) Sink(id domain.ConnectionID) (contract.EventSink, bool) {
	sink, ok := r.sinks[id]
	return sink, ok
}

func (r *stubRegistry) All() []contract.EventSink {
	all := make([]contract.EventSink, 0, len(r.sinks))
	for _, sink := range r.sinks {
		all = append(all, sink)
	}
	return all
}

func TestEventFanout_DeliversToEverySink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics()

	// Given two live sinks
	sink1 := &countingSink{consumed: make(chan event.DomainEvent, 1)}
	sink2 := &countingSink{consumed: make(chan event.DomainEvent, 1)}
	registry := &stubRegistry{sinks: map[domain.ConnectionID]contract.EventSink{
		"conn-1": sink1,
		"conn-2": sink2,
	}}

	events := make(chan event.DomainEvent, 1)
	worker := NewEventFanout(log, registry, metrics, events, 1*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	// When an event is broadcast
	events <- event.TypingUsers{Usernames: []string{"alice"}}

	// Then both sinks consumed it
	for _, sink := range []*countingSink{sink1, sink2} {
		select {
		case evt := <-sink.consumed:
			req.Equal("typing users", evt.Name())
		case <-time.After(1 * time.Second):
			req.Fail("Sink did not consume the event in time")
		}
	}
}

func TestEventFanout_SlowSinkDoesNotStallOthers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics()

	// Given one blocking sink and one healthy sink
	slow := &blockingSink{}
	healthy := &countingSink{consumed: make(chan event.DomainEvent, 1)}
	registry := &stubRegistry{sinks: map[domain.ConnectionID]contract.EventSink{
		"conn-slow":    slow,
		"conn-healthy": healthy,
	}}

	events := make(chan event.DomainEvent, 1)
	worker := NewEventFanout(log, registry, metrics, events, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	// When an event is broadcast
	events <- event.UserStatus{Username: "bob", Status: domain.StatusOnline}

	// Then the healthy sink still receives it despite the slow one
	select {
	case evt := <-healthy.consumed:
		req.Equal("user status", evt.Name())
	case <-time.After(1 * time.Second):
		req.Fail("Healthy sink should have consumed the event")
	}
}
