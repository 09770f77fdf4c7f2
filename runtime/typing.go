package runtime

import (
	"context"
	"sort"
	"sync"

	"sockchat/domain"
	"sockchat/domain/event"
)

// TypingTracker holds the set of usernames currently typing in the public
// channel. It is ephemeral: rebuilt from empty on restart, and entries are
// actively removed on typing-stop, disconnect, or message send.
type TypingTracker struct {
	mu    sync.Mutex
	users map[string]struct{}
}

func NewTypingTracker() *TypingTracker {
	return &TypingTracker{users: make(map[string]struct{})}
}

// Add reports whether the set changed.
func (t *TypingTracker) Add(username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.users[username]; ok {
		return false
	}
	t.users[username] = struct{}{}
	return true
}

// Remove reports whether the username was present.
func (t *TypingTracker) Remove(username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.users[username]; !ok {
		return false
	}
	delete(t.users, username)
	return true
}

// List snapshots the set, sorted for stable broadcasts.
func (t *TypingTracker) List() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	users := make([]string, 0, len(t.users))
	for username := range t.users {
		users = append(users, username)
	}
	sort.Strings(users)
	return users
}

// SetTyping updates the typing state of the connection's username and
// broadcasts the full current set to every live connection. A connection
// that never registered is ignored.
func (e *Engine) SetTyping(ctx context.Context, id domain.ConnectionID, isTyping bool) {
	ses, ok := e.sessions.LookupByConnection(id)
	if !ok {
		return
	}

	if isTyping {
		e.typing.Add(ses.Username)
	} else {
		e.typing.Remove(ses.Username)
	}
	e.broadcast(ctx, event.TypingUsers{Usernames: e.typing.List()})
}
