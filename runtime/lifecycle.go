package runtime

import (
	"context"
	"fmt"

	"sockchat/contract"
	"sockchat/domain"
	"sockchat/domain/event"
)

// Register binds a connection to a username and makes it live. The sequence
// is fixed so observers never see an inconsistent intermediate state:
//  1. claim the username in the session table (serializes racing claims),
//  2. persist the presence row,
//  3. deliver the history snapshot privately to this connection,
//  4. broadcast the online presence and the refreshed roster.
//
// The snapshot (3) strictly precedes the broadcast (4), so the registering
// client never observes its own presence announcement ahead of its history.
func (e *Engine) Register(ctx context.Context, id domain.ConnectionID, sink contract.EventSink, username string) error {
	ses, superseded, err := e.sessions.Register(id, username)
	if err != nil {
		e.metrics.IncrRejectedRegistrations()
		return fmt.Errorf("registering %q: %w", username, err)
	}

	if superseded != nil {
		// The old connection stays open but is orphaned: out of the
		// broadcast set and no longer resolving as this username.
		e.registry.Unsubscribe(*superseded)
		e.log.Info("Username rebound to a new connection",
			"username", username, "orphaned", string(*superseded))
	}
	e.registry.Subscribe(id, sink)

	// The table claim and the subscription are two steps; a racing claim of
	// the same username can supersede this connection in between, and its
	// Unsubscribe of this id then lands before the Subscribe above. Re-check
	// the binding after subscribing: if it no longer resolves to us, the
	// race was lost and this connection is an orphan like any superseded
	// one, out of the broadcast set, silent.
	if current, live := e.sessions.LookupByConnection(id); !live || current.Username != username {
		e.registry.Unsubscribe(id)
		e.log.Info("Registration superseded mid-flight",
			"username", username, "orphaned", string(id))
		return nil
	}

	if err := e.storageCall(ctx, func() error { return e.users.UpsertUser(username, id) }); err != nil {
		// Without a durable presence row the registration does not stand;
		// roll the in-memory claim back and surface the failure to the
		// registering connection only.
		e.sessions.MarkOffline(id)
		e.registry.Unsubscribe(id)
		e.metrics.IncrRejectedRegistrations()
		return fmt.Errorf("persisting user %q: %w", username, err)
	}

	messages, err := e.historySnapshot(ctx)
	if err != nil {
		// Registration already stands; the client just starts from an
		// empty timeline. Contained per the failure policy.
		e.log.Error("history snapshot failed", "username", username, "error", err)
	}
	e.deliver(ctx, sink, event.ChatHistory{Messages: messages})

	e.broadcast(ctx, event.UserStatus{Username: ses.Username, Status: domain.StatusOnline})
	e.broadcast(ctx, event.OnlineUsers{Sessions: e.sessions.AllOnline()})
	e.metrics.IncrRegistrations()
	return nil
}

// Disconnect finalizes a connection, transport-initiated and always
// terminal. Anonymous connections vanish silently; registered ones go
// offline, leave the typing set, and are announced to the remaining live
// connections. Duplicate disconnect signals are no-ops.
func (e *Engine) Disconnect(ctx context.Context, id domain.ConnectionID) {
	e.registry.Unsubscribe(id)

	ses, ok := e.sessions.MarkOffline(id)
	if !ok {
		return
	}
	e.metrics.IncrDisconnects()

	// A client that disconnects mid-keystroke must not stay "typing".
	if e.typing.Remove(ses.Username) {
		e.broadcast(ctx, event.TypingUsers{Usernames: e.typing.List()})
	}

	if err := e.storageCall(ctx, func() error {
		return e.users.SetStatus(id, domain.StatusOffline, ses.LastSeen)
	}); err != nil {
		e.log.Error("failed to persist offline status",
			"username", ses.Username, "error", err)
	}

	e.broadcast(ctx, event.UserStatus{
		Username: ses.Username,
		Status:   domain.StatusOffline,
		LastSeen: ses.LastSeen,
	})
}

func (e *Engine) historySnapshot(ctx context.Context) ([]domain.Message, error) {
	var messages []domain.Message
	err := e.storageCall(ctx, func() error {
		var err error
		messages, err = e.history.RecentPublic(e.historyLimit)
		return err
	})
	return messages, err
}
