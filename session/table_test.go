package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sockchat/domain"
	"sockchat/errors"
)

func TestTable_Register_EmptyUsername(t *testing.T) {
	req := require.New(t)
	table := NewTable()

	_, _, err := table.Register(domain.ConnectionID(uuid.NewString()), "")

	req.ErrorIs(err, errors.ErrInvalidUsername)
	req.Empty(table.AllOnline())
}

func TestTable_Register_Then_Lookup(t *testing.T) {
	req := require.New(t)
	table := NewTable()
	id := domain.ConnectionID(uuid.NewString())

	ses, superseded, err := table.Register(id, "alice")

	req.NoError(err)
	req.Nil(superseded)
	req.Equal("alice", ses.Username)
	req.Equal(domain.StatusOnline, ses.Status)
	req.Nil(ses.LastSeen)

	byName, ok := table.LookupByUsername("alice")
	req.True(ok)
	req.Equal(ses, byName)

	byConn, ok := table.LookupByConnection(id)
	req.True(ok)
	req.Equal(ses, byConn)
}

func TestTable_Register_LastRegisterWins(t *testing.T) {
	req := require.New(t)
	table := NewTable()
	c1 := domain.ConnectionID("c1")
	c3 := domain.ConnectionID("c3")

	// Given alice is live on c1
	_, _, err := table.Register(c1, "alice")
	req.NoError(err)

	// When c3 claims alice while c1 is still connected
	ses, superseded, err := table.Register(c3, "alice")
	req.NoError(err)

	// Then exactly one Online alice exists, bound to c3
	req.NotNil(superseded)
	req.Equal(c1, *superseded)
	req.Equal(c3, ses.ConnectionID)

	online := table.AllOnline()
	req.Len(online, 1)
	req.Equal(c3, online[0].ConnectionID)

	// And the orphaned connection no longer resolves as live alice
	_, ok := table.LookupByConnection(c1)
	req.False(ok)
}

func TestTable_Register_SameConnection_NewUsername(t *testing.T) {
	req := require.New(t)
	table := NewTable()
	id := domain.ConnectionID("c1")

	_, _, err := table.Register(id, "alice")
	req.NoError(err)
	_, superseded, err := table.Register(id, "bob")
	req.NoError(err)
	req.Nil(superseded)

	// Only the latest username is live for that connection
	online := table.AllOnline()
	req.Len(online, 1)
	req.Equal("bob", online[0].Username)

	// The previous identity is retained offline with a last_seen stamp
	old, ok := table.LookupByUsername("alice")
	req.True(ok)
	req.Equal(domain.StatusOffline, old.Status)
	req.NotNil(old.LastSeen)
}

func TestTable_MarkOffline(t *testing.T) {
	req := require.New(t)
	table := NewTable()
	id := domain.ConnectionID("c1")

	_, _, err := table.Register(id, "alice")
	req.NoError(err)

	ses, ok := table.MarkOffline(id)
	req.True(ok)
	req.Equal(domain.StatusOffline, ses.Status)
	req.NotNil(ses.LastSeen)
	req.Empty(table.AllOnline())

	// The binding stays queryable for presence history
	kept, ok := table.LookupByUsername("alice")
	req.True(ok)
	req.Equal(domain.StatusOffline, kept.Status)

	// Duplicate disconnect signals are no-ops
	_, ok = table.MarkOffline(id)
	req.False(ok)
}

func TestTable_MarkOffline_UnknownConnection(t *testing.T) {
	req := require.New(t)
	table := NewTable()

	_, ok := table.MarkOffline(domain.ConnectionID("never-registered"))

	req.False(ok)
}

// A disconnect of a superseded connection must not drag the canonical
// session offline.
func TestTable_MarkOffline_SupersededConnection(t *testing.T) {
	req := require.New(t)
	table := NewTable()
	c1 := domain.ConnectionID("c1")
	c2 := domain.ConnectionID("c2")

	_, _, err := table.Register(c1, "alice")
	req.NoError(err)
	_, _, err = table.Register(c2, "alice")
	req.NoError(err)

	_, ok := table.MarkOffline(c1)
	req.False(ok)

	live, ok := table.LookupByUsername("alice")
	req.True(ok)
	req.Equal(domain.StatusOnline, live.Status)
	req.Equal(c2, live.ConnectionID)
}

// Property from the concurrency model: concurrent registrations of the same
// username from different connections serialize so that exactly one binding
// ends up canonical.
func TestTable_ConcurrentRegistrations_ExactlyOneCanonical(t *testing.T) {
	req := require.New(t)
	table := NewTable()

	const racers = 32
	ids := make([]domain.ConnectionID, racers)
	for i := range ids {
		ids[i] = domain.ConnectionID(uuid.NewString())
	}

	var wg sync.WaitGroup
	wg.Add(racers)
	for _, id := range ids {
		go func(id domain.ConnectionID) {
			defer wg.Done()
			_, _, err := table.Register(id, "alice")
			require.NoError(t, err)
		}(id)
	}
	wg.Wait()

	online := table.AllOnline()
	req.Len(online, 1)
	req.Equal("alice", online[0].Username)

	// The winner's connection is the only one resolving as live
	liveCount := 0
	for _, id := range ids {
		if _, ok := table.LookupByConnection(id); ok {
			liveCount++
			req.Equal(id, online[0].ConnectionID)
		}
	}
	req.Equal(1, liveCount)
}
