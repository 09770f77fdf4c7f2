package runtime_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"sockchat/domain"
	"sockchat/domain/event"
	"sockchat/emoji"
	"sockchat/moderation"
	"sockchat/observability"
	"sockchat/repositories"
	"sockchat/runtime"
	"sockchat/runtime/workers"
)

type streamSink struct {
	events chan event.DomainEvent
}

func newStreamSink() *streamSink {
	return &streamSink{events: make(chan event.DomainEvent, 64)}
}

func (s *streamSink) Consume(ctx context.Context, evt event.DomainEvent) error {
	select {
	case s.events <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// waitFor drains the sink until an event of type T arrives.
func waitFor[T event.DomainEvent](t *testing.T, sink *streamSink) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-sink.events:
			if typed, ok := evt.(T); ok {
				return typed
			}
		case <-deadline:
			var zero T
			t.Fatalf("no %q event received in time", zero.Name())
			return zero
		}
	}
}

func newIntegrationEngine(t *testing.T, db *badger.DB) *runtime.Engine {
	t.Helper()
	log := slog.New(slog.DiscardHandler)

	replacer, err := emoji.NewReplacer()
	require.NoError(t, err)
	data, err := moderation.LoadCensoredWords()
	require.NoError(t, err)
	moderator, err := moderation.NewModerator(data.Words, '*', log)
	require.NoError(t, err)

	return runtime.NewEngine(
		log,
		workers.NewSupervisor(log, 100*time.Millisecond),
		runtime.NewRegistry(),
		repositories.NewHistoryRepository(db, log),
		repositories.NewUserRepository(db),
		replacer, moderator,
		observability.NewMetrics(),
		64,                   // bufferSize
		50,                   // historyLimit
		500*time.Millisecond, // storageTimeout
		500*time.Millisecond, // sinkTimeout
	)
}

// TestEngine_FullSession drives a complete two-user session through the
// real storage layer and the supervised fan-out worker.
func TestEngine_FullSession(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := newIntegrationEngine(t, db)
	req.NoError(engine.Start(ctx))
	defer engine.Stop()

	aliceSink := newStreamSink()
	bobSink := newStreamSink()

	// Registration: snapshot first, then presence reaches everyone
	req.NoError(engine.Register(ctx, "conn-alice", aliceSink, "alice"))
	snapshot := waitFor[event.ChatHistory](t, aliceSink)
	req.Empty(snapshot.Messages)

	req.NoError(engine.Register(ctx, "conn-bob", bobSink, "bob"))
	waitFor[event.ChatHistory](t, bobSink)
	roster := waitFor[event.OnlineUsers](t, bobSink)
	req.Len(roster.Sessions, 2)

	// Public message lands on both ends
	engine.SendPublic(ctx, "conn-alice", "hello :smile:")
	for _, sink := range []*streamSink{aliceSink, bobSink} {
		msg := waitFor[event.ChatMessage](t, sink)
		req.Equal("alice", msg.Message.Username)
		req.Equal("hello 😄", msg.Message.Content)
	}

	// Private message stays between the two parties and is durable
	engine.SendPrivate(ctx, "conn-bob", "alice", "psst")
	private := waitFor[event.PrivateMessage](t, aliceSink)
	req.Equal("bob", private.Message.Sender)

	stored, err := engine.PrivateHistory(ctx, "alice", "bob", 10)
	req.NoError(err)
	req.Len(stored, 1)
	req.Equal("psst", stored[0].Content)

	// Disconnect is announced with a last-seen stamp
	engine.Disconnect(ctx, "conn-alice")
	status := waitFor[event.UserStatus](t, bobSink)
	req.Equal("alice", status.Username)
	req.Equal(domain.StatusOffline, status.Status)
	req.NotNil(status.LastSeen)
}

// TestEngine_RestartRecovery verifies that a fresh engine over the same
// database replays history and sweeps stale presence rows.
func TestEngine_RestartRecovery(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	db, err := badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())

	// First run: one user, one message, no clean disconnect
	engine := newIntegrationEngine(t, db)
	req.NoError(engine.Start(ctx))

	aliceSink := newStreamSink()
	req.NoError(engine.Register(ctx, "conn-alice", aliceSink, "alice"))
	engine.SendPublic(ctx, "conn-alice", "survives restarts")
	waitFor[event.ChatMessage](t, aliceSink)

	engine.Stop()
	cancel()
	req.NoError(db.Close())

	// Second run over the same directory
	db, err = badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()

	restarted := newIntegrationEngine(t, db)
	req.NoError(restarted.Start(ctx2))
	defer restarted.Stop()

	// The crashed user's row was swept offline during Start
	users := repositories.NewUserRepository(db)
	online, err := users.OnlineUsers()
	req.NoError(err)
	req.Empty(online)

	// A new connection replays the persisted history
	bobSink := newStreamSink()
	req.NoError(restarted.Register(ctx2, "conn-bob", bobSink, "bob"))
	snapshot := waitFor[event.ChatHistory](t, bobSink)
	req.Len(snapshot.Messages, 1)
	req.Equal("survives restarts", snapshot.Messages[0].Content)
}
