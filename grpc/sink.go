package grpc

import (
	"context"

	"sockchat/domain/event"
)

type Sink struct {
	ConnectedUserEvent chan event.DomainEvent
}

func NewGrpcSink(bufferSize int) *Sink {
	return &Sink{ConnectedUserEvent: make(chan event.DomainEvent, bufferSize)}
}

// Consume is called by the fan-out worker and by targeted deliveries.
// Redirect the event through the concerned owner of the channel
// The gRPC handler will take it from now
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.ConnectedUserEvent <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Channel full: backpressure, the slow client loses this event
		return nil
	}
}
