package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Append_And_Fetch_Public_Messages(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	first, err := repository.AppendPublic("alice", "hi", at)
	req.NoError(err)
	second, err := repository.AppendPublic("bob", "hello", at.Add(1*time.Minute))
	req.NoError(err)

	fetched, err := repository.RecentPublic(50)
	req.NoError(err)
	req.Len(fetched, 2)
	// Oldest first, ready to replay as a history snapshot
	req.Equal(first, fetched[0])
	req.Equal(second, fetched[1])
}

func Test_RecentPublic_Honours_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	for i, text := range []string{"one", "two", "three", "four"} {
		_, err := repository.AppendPublic("alice", text, at.Add(time.Duration(i)*time.Second))
		req.NoError(err)
	}

	fetched, err := repository.RecentPublic(2)
	req.NoError(err)
	req.Len(fetched, 2)
	// The two most recent records survive the cut
	req.Equal("three", fetched[0].Content)
	req.Equal("four", fetched[1].Content)
}

func Test_RecentPrivate_Is_Direction_Agnostic(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	_, err := repository.AppendPrivate("alice", "bob", "hey bob", at)
	req.NoError(err)
	_, err = repository.AppendPrivate("bob", "alice", "hey alice", at.Add(1*time.Second))
	req.NoError(err)
	// Noise from an unrelated conversation
	_, err = repository.AppendPrivate("alice", "clara", "psst", at.Add(2*time.Second))
	req.NoError(err)

	forward, err := repository.RecentPrivate("alice", "bob", 50)
	req.NoError(err)
	backward, err := repository.RecentPrivate("bob", "alice", 50)
	req.NoError(err)

	req.Len(forward, 2)
	req.Equal(forward, backward)
	req.Equal("hey bob", forward[0].Content)
	req.Equal("hey alice", forward[1].Content)
}

func Test_Append_Private_To_Self(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	_, err := repository.AppendPrivate("alice", "alice", "note to self", time.Now().UTC())
	req.NoError(err)

	fetched, err := repository.RecentPrivate("alice", "alice", 50)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("note to self", fetched[0].Content)
}

func Test_RecentPrivate_Keeps_Conversations_Apart(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	// Given two conversations whose pair keys share a common prefix
	_, err := repository.AppendPrivate("alice", "bob", "for bob", at)
	req.NoError(err)
	_, err = repository.AppendPrivate("alice", "bobby", "for bobby", at)
	req.NoError(err)

	// Then each pair only sees its own messages
	bobSide, err := repository.RecentPrivate("alice", "bob", 50)
	req.NoError(err)
	req.Len(bobSide, 1)
	req.Equal("for bob", bobSide[0].Content)

	bobbySide, err := repository.RecentPrivate("bobby", "alice", 50)
	req.NoError(err)
	req.Len(bobbySide, 1)
	req.Equal("for bobby", bobbySide[0].Content)
}
