package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sockchat/domain"
	"sockchat/domain/event"
)

func TestEngine_SendPublic_Persists_Then_Broadcasts(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())

	req.NoError(e.Register(context.Background(), "conn-1", newChanSink(), "alice"))
	drainBroadcasts(e)

	// When alice sends a public message
	e.SendPublic(context.Background(), "conn-1", "hello everyone")

	// Then the record is durable before the broadcast goes out
	req.Equal(1, history.publicCount())

	msg, ok := nextBroadcast(t, e).(event.ChatMessage)
	req.True(ok)
	req.Equal("alice", msg.Message.Username)
	req.Equal("hello everyone", msg.Message.Content)
}

func TestEngine_SendPublic_Replaces_Emoji_Shorthands(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())

	req.NoError(e.Register(context.Background(), "conn-1", newChanSink(), "alice"))
	drainBroadcasts(e)

	e.SendPublic(context.Background(), "conn-1", "nice one :fire:")

	msg, ok := nextBroadcast(t, e).(event.ChatMessage)
	req.True(ok)
	req.Equal("nice one 🔥", msg.Message.Content)
}

func TestEngine_SendPublic_Masks_Censored_Words(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())

	req.NoError(e.Register(context.Background(), "conn-1", newChanSink(), "alice"))
	drainBroadcasts(e)

	// The test dictionary censors "badger"
	e.SendPublic(context.Background(), "conn-1", "that badger bites")

	msg, ok := nextBroadcast(t, e).(event.ChatMessage)
	req.True(ok)
	req.Equal("that ****** bites", msg.Message.Content)
}

func TestEngine_SendPublic_Drops_Unregistered_And_Empty(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())

	// When a connection that never registered sends
	e.SendPublic(context.Background(), "conn-ghost", "hello")
	// And a registered one sends an empty text
	req.NoError(e.Register(context.Background(), "conn-1", newChanSink(), "alice"))
	drainBroadcasts(e)
	e.SendPublic(context.Background(), "conn-1", "")

	// Then nothing is persisted or broadcast
	req.Equal(0, history.publicCount())
	select {
	case evt := <-e.broadcasts:
		req.Failf("unexpected broadcast", "got %q", evt.Name())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_SendPublic_Clears_Typing_State(t *testing.T) {
	req := require.New(t)
	e := newTestEngine(t, &fakeHistory{}, newFakeUsers())

	req.NoError(e.Register(context.Background(), "conn-1", newChanSink(), "alice"))
	drainBroadcasts(e)

	// Given alice is typing
	e.SetTyping(context.Background(), "conn-1", true)
	drainBroadcasts(e)

	// When the message lands
	e.SendPublic(context.Background(), "conn-1", "done typing")

	// Then the typing set empties before the message broadcast
	typing, ok := nextBroadcast(t, e).(event.TypingUsers)
	req.True(ok)
	req.Empty(typing.Usernames)

	_, ok = nextBroadcast(t, e).(event.ChatMessage)
	req.True(ok)
}

func TestEngine_SendPrivate_Reaches_Both_Parties(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())
	aliceSink := newChanSink()
	bobSink := newChanSink()

	req.NoError(e.Register(context.Background(), "conn-1", aliceSink, "alice"))
	req.NoError(e.Register(context.Background(), "conn-2", bobSink, "bob"))
	drainBroadcasts(e)
	// Discard the history snapshots delivered at registration
	aliceSink.next(t)
	bobSink.next(t)

	// When alice messages bob
	e.SendPrivate(context.Background(), "conn-1", "bob", "just for you")

	// Then both ends receive exactly the private event, nothing is broadcast
	for _, sink := range []*chanSink{bobSink, aliceSink} {
		evt, ok := sink.next(t).(event.PrivateMessage)
		req.True(ok)
		req.Equal("alice", evt.Message.Sender)
		req.Equal("bob", evt.Message.Receiver)
		req.Equal("just for you", evt.Message.Content)
	}
	select {
	case evt := <-e.broadcasts:
		req.Failf("unexpected broadcast", "got %q", evt.Name())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_SendPrivate_Offline_Recipient_Still_Persisted(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())
	aliceSink := newChanSink()

	req.NoError(e.Register(context.Background(), "conn-1", aliceSink, "alice"))
	drainBroadcasts(e)
	aliceSink.next(t)

	// When alice messages someone who is not connected
	e.SendPrivate(context.Background(), "conn-1", "carol", "read this later")

	// Then the record lands in history and alice still gets her echo
	req.Len(history.private, 1)
	evt, ok := aliceSink.next(t).(event.PrivateMessage)
	req.True(ok)
	req.Equal("carol", evt.Message.Receiver)
}

func TestEngine_SendPrivate_To_Self_Delivered_Once(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())
	aliceSink := newChanSink()

	req.NoError(e.Register(context.Background(), "conn-1", aliceSink, "alice"))
	drainBroadcasts(e)
	aliceSink.next(t)

	// When alice messages herself
	e.SendPrivate(context.Background(), "conn-1", "alice", "note to self")

	// Then exactly one copy arrives
	evt, ok := aliceSink.next(t).(event.PrivateMessage)
	req.True(ok)
	req.Equal("alice", evt.Message.Sender)
	req.Equal("alice", evt.Message.Receiver)
	select {
	case <-aliceSink.events:
		req.Fail("self message must be delivered exactly once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_SendPrivate_Drops_Unregistered_Sender(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())

	e.SendPrivate(context.Background(), domain.ConnectionID("conn-ghost"), "bob", "hello")

	req.Empty(history.private)
}

func TestEngine_SendPrivate_Rejects_Separator_Target(t *testing.T) {
	req := require.New(t)
	history := &fakeHistory{}
	e := newTestEngine(t, history, newFakeUsers())
	sink := newChanSink()

	req.NoError(e.Register(context.Background(), "conn-1", sink, "mallory"))
	drainBroadcasts(e)
	sink.next(t)

	// A target carrying a key separator would address the conversation
	// range of a different pair; it must never reach storage.
	e.SendPrivate(context.Background(), "conn-1", "b|c", "crafted")
	e.SendPrivate(context.Background(), "conn-1", "b:c", "crafted")

	req.Empty(history.private)
	select {
	case <-sink.events:
		req.Fail("no echo must be delivered for a rejected target")
	case <-time.After(50 * time.Millisecond):
	}
}
