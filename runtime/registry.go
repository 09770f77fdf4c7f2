package runtime

import (
	"sync"

	"sockchat/contract"
	"sockchat/domain"
)

// Registry is the directory of live connections: one EventSink per
// registered connection. A connection is subscribed on successful
// registration and removed on disconnect or supersession, so broadcasting
// over All is broadcasting to exactly the live set.
type Registry struct {
	mu    sync.RWMutex
	sinks map[domain.ConnectionID]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[domain.ConnectionID]contract.EventSink),
	}
}

// Subscribe registers a connection's active sink, replacing any previous
// one for the same connection.
func (r *Registry) Subscribe(id domain.ConnectionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sinks[id] = sink
}

// Unsubscribe removes a connection from the registry. Removing an unknown
// connection is a no-op, which keeps disconnect handling idempotent.
func (r *Registry) Unsubscribe(id domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sinks, id)
}

// Sink resolves one connection's sink for targeted delivery.
func (r *Registry) Sink(id domain.ConnectionID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sinks[id]
	return sink, ok
}

// All snapshots every live sink for fan-out.
func (r *Registry) All() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]contract.EventSink, 0, len(r.sinks))
	for _, sink := range r.sinks {
		all = append(all, sink)
	}
	return all
}
