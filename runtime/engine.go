// Package runtime wires the session table, history store, and transport
// sinks into the connection lifecycle, message routing, and presence
// engine. It orchestrates the system without containing storage or wire
// protocol logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sockchat/contract"
	"sockchat/domain"
	"sockchat/domain/event"
	"sockchat/emoji"
	"sockchat/errors"
	"sockchat/moderation"
	"sockchat/observability"
	"sockchat/repositories"
	"sockchat/runtime/workers"
	"sockchat/session"
)

type Engine struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	sessions   *session.Table
	typing     *TypingTracker
	history    repositories.IHistoryRepository
	users      repositories.IUserRepository
	replacer   *emoji.Replacer
	moderator  moderation.Moderator
	metrics    *observability.Metrics

	broadcasts chan event.DomainEvent

	historyLimit   int
	storageTimeout time.Duration
	sinkTimeout    time.Duration
}

func NewEngine(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry,
	history repositories.IHistoryRepository, users repositories.IUserRepository,
	replacer *emoji.Replacer, moderator moderation.Moderator,
	metrics *observability.Metrics,
	bufferSize, historyLimit int,
	storageTimeout, sinkTimeout time.Duration) *Engine {
	return &Engine{
		log:            log,
		supervisor:     supervisor,
		registry:       registry,
		sessions:       session.NewTable(),
		typing:         NewTypingTracker(),
		history:        history,
		users:          users,
		replacer:       replacer,
		moderator:      moderator,
		metrics:        metrics,
		broadcasts:     make(chan event.DomainEvent, bufferSize),
		historyLimit:   historyLimit,
		storageTimeout: storageTimeout,
		sinkTimeout:    sinkTimeout,
	}
}

// Start reconciles persisted presence with the (empty) in-memory state and
// launches the supervised fan-out loop. After a restart, every durable row
// still marked online is stale by definition and gets swept offline.
func (e *Engine) Start(ctx context.Context) error {
	stale, err := e.users.OnlineUsers()
	if err != nil {
		return fmt.Errorf("presence reconciliation: %w", err)
	}
	now := time.Now().UTC()
	for _, s := range stale {
		if err := e.users.SetStatus(s.ConnectionID, domain.StatusOffline, &now); err != nil {
			return fmt.Errorf("presence reconciliation for %q: %w", s.Username, err)
		}
	}
	if len(stale) > 0 {
		e.log.Info(fmt.Sprintf("Swept %d stale online users after restart", len(stale)))
	}

	e.supervisor.Add(workers.NewEventFanout(e.log, e.registry, e.metrics, e.broadcasts, e.sinkTimeout))
	go e.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown of the supervised workers.
func (e *Engine) Stop() {
	e.log.Info("Requesting engine shutdown")
	e.supervisor.Stop()
}

// OnlineUsers snapshots the presence listing for transport handlers.
func (e *Engine) OnlineUsers() []domain.Session {
	return e.sessions.AllOnline()
}

// PrivateHistory exposes the direct-message log between two usernames.
func (e *Engine) PrivateHistory(ctx context.Context, userA, userB string, limit int) ([]domain.PrivateMessage, error) {
	// Both names come raw off the wire; a name carrying a key separator
	// could address another pair's conversation range.
	if err := domain.ValidateUsername(userA); err != nil {
		return nil, fmt.Errorf("user %q: %w", userA, err)
	}
	if err := domain.ValidateUsername(userB); err != nil {
		return nil, fmt.Errorf("user %q: %w", userB, err)
	}
	if limit <= 0 || limit > e.historyLimit {
		limit = e.historyLimit
	}
	var messages []domain.PrivateMessage
	err := e.storageCall(ctx, func() error {
		var err error
		messages, err = e.history.RecentPrivate(userA, userB, limit)
		return err
	})
	return messages, err
}

// broadcast enqueues an event for fan-out to every live connection.
// Persistence always happens before the enqueue, so a client that queries
// history right after receiving a broadcast sees the message.
func (e *Engine) broadcast(ctx context.Context, evt event.DomainEvent) {
	select {
	case e.broadcasts <- evt:
	case <-ctx.Done():
		e.log.Warn(fmt.Sprintf("Dropping %q broadcast: %v", evt.Name(), ctx.Err()))
	}
}

// deliver pushes an event to a single sink, bounded by the sink timeout.
func (e *Engine) deliver(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	ctx, cancel := context.WithTimeout(ctx, e.sinkTimeout)
	defer cancel()
	if err := sink.Consume(ctx, evt); err != nil {
		e.log.Error("failed to deliver event", "event", evt.Name(), "error", err)
	}
}

// storageCall bounds a history-store call with the configured timeout.
// A stalled call stalls only the triggering event; expiry is surfaced as
// ErrStorageTimeout and handled like any other storage failure.
func (e *Engine) storageCall(ctx context.Context, op func() error) error {
	ctx, cancel := context.WithTimeout(ctx, e.storageTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- op() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		e.metrics.IncrStorageFailures()
		return errors.ErrStorageTimeout
	}
}
