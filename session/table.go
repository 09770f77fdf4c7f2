// Package session owns the authoritative in-memory mapping between
// usernames, connections, and liveness. All mutations go through Table;
// no other component writes to it.
package session

import (
	"sort"
	"sync"
	"time"

	"sockchat/domain"
)

// Table holds one session per username plus a live index from connection id
// to username. Invariants, both enforced under the lock:
//   - at most one Online session per username (last-register-wins),
//   - at most one live session per connection id.
//
// Sessions are never hard-deleted. An offline session stays behind as
// presence history until the username registers again.
type Table struct {
	mu       sync.RWMutex
	byUser   map[string]*domain.Session
	liveConn map[domain.ConnectionID]string
}

func NewTable() *Table {
	return &Table{
		byUser:   make(map[string]*domain.Session),
		liveConn: make(map[domain.ConnectionID]string),
	}
}

// Register creates or supersedes the session for username and binds it to
// the given connection. When another connection previously held the
// username, its id is returned so the caller can drop it from the broadcast
// set; the old connection is orphaned, not closed.
func (t *Table) Register(id domain.ConnectionID, username string) (domain.Session, *domain.ConnectionID, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return domain.Session{}, nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// A connection re-registering under a new name keeps only the latest
	// username live; the previous one goes offline without a broadcast.
	if prev, ok := t.liveConn[id]; ok && prev != username {
		t.setOffline(prev)
		delete(t.liveConn, id)
	}

	var superseded *domain.ConnectionID
	if existing, ok := t.byUser[username]; ok &&
		existing.Status == domain.StatusOnline && existing.ConnectionID != id {
		old := existing.ConnectionID
		superseded = &old
		delete(t.liveConn, old)
	}

	s := &domain.Session{
		Username:     username,
		ConnectionID: id,
		Status:       domain.StatusOnline,
	}
	t.byUser[username] = s
	t.liveConn[id] = username
	return *s, superseded, nil
}

// MarkOffline flips the session bound to this connection to Offline and
// stamps last_seen. It reports false when the connection is unknown, was
// never registered, or has already been superseded; such calls are no-ops,
// which makes disconnect handling idempotent and race-safe against a
// concurrent re-registration of the same username.
func (t *Table) MarkOffline(id domain.ConnectionID) (domain.Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	username, ok := t.liveConn[id]
	if !ok {
		return domain.Session{}, false
	}
	delete(t.liveConn, id)
	t.setOffline(username)
	return *t.byUser[username], true
}

// setOffline must be called with the lock held.
func (t *Table) setOffline(username string) {
	s, ok := t.byUser[username]
	if !ok {
		return
	}
	now := time.Now().UTC()
	s.Status = domain.StatusOffline
	s.LastSeen = &now
}

// LookupByUsername returns the session for username regardless of status;
// callers decide whether an offline session is useful (e.g. last_seen).
func (t *Table) LookupByUsername(username string) (domain.Session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.byUser[username]
	if !ok {
		return domain.Session{}, false
	}
	return *s, true
}

// LookupByConnection resolves a connection to its live session. Superseded
// and unregistered connections do not resolve.
func (t *Table) LookupByConnection(id domain.ConnectionID) (domain.Session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	username, ok := t.liveConn[id]
	if !ok {
		return domain.Session{}, false
	}
	return *t.byUser[username], true
}

// AllOnline snapshots every Online session, sorted by username so presence
// listings are stable for clients and tests.
func (t *Table) AllOnline() []domain.Session {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sessions := make([]domain.Session, 0, len(t.liveConn))
	for _, username := range t.liveConn {
		sessions = append(sessions, *t.byUser[username])
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Username < sessions[j].Username
	})
	return sessions
}
