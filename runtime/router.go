package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/abadojack/whatlanggo"

	"sockchat/domain"
	"sockchat/domain/event"
)

// SendPublic routes a public message: normalize, persist, then fan out to
// every live connection including the sender. Unregistered senders and
// empty texts are dropped silently; the sender is never notified.
func (e *Engine) SendPublic(ctx context.Context, id domain.ConnectionID, text string) {
	ses, ok := e.sessions.LookupByConnection(id)
	if !ok || text == "" {
		e.log.Debug(fmt.Sprintf("Dropping public message from %s", id))
		return
	}

	content := e.normalize(ses.Username, text)
	var msg domain.Message
	err := e.storageCall(ctx, func() error {
		var err error
		msg, err = e.history.AppendPublic(ses.Username, content, time.Now().UTC())
		return err
	})
	if err != nil {
		e.metrics.IncrStorageFailures()
		e.log.Error("public message not persisted", "username", ses.Username, "error", err)
		return
	}

	// Sending a message implicitly ends the sender's typing state.
	if e.typing.Remove(ses.Username) {
		e.broadcast(ctx, event.TypingUsers{Usernames: e.typing.List()})
	}

	e.broadcast(ctx, event.ChatMessage{Message: msg})
	e.metrics.IncrPublicRouted()
}

// SendPrivate routes a direct message. The record is persisted even when
// the recipient is offline so it can be replayed from history; real-time
// delivery happens only for a live recipient. The sender always gets its
// own copy echoed back, exactly once even when messaging itself.
func (e *Engine) SendPrivate(ctx context.Context, id domain.ConnectionID, to, text string) {
	ses, ok := e.sessions.LookupByConnection(id)
	if !ok || text == "" {
		e.log.Debug(fmt.Sprintf("Dropping private message from %s", id))
		return
	}
	// The target comes raw off the wire; a name that could never register
	// must not reach the storage keys either.
	if err := domain.ValidateUsername(to); err != nil {
		e.log.Debug(fmt.Sprintf("Dropping private message to invalid target %q", to))
		return
	}

	content := e.normalize(ses.Username, text)
	var msg domain.PrivateMessage
	err := e.storageCall(ctx, func() error {
		var err error
		msg, err = e.history.AppendPrivate(ses.Username, to, content, time.Now().UTC())
		return err
	})
	if err != nil {
		e.metrics.IncrStorageFailures()
		e.log.Error("private message not persisted", "sender", ses.Username, "error", err)
		return
	}

	evt := event.PrivateMessage{Message: msg}
	if recipient, found := e.sessions.LookupByUsername(to); found &&
		recipient.Status == domain.StatusOnline && recipient.ConnectionID != id {
		if sink, live := e.registry.Sink(recipient.ConnectionID); live {
			e.deliver(ctx, sink, evt)
		}
	}
	if sink, live := e.registry.Sink(id); live {
		e.deliver(ctx, sink, evt)
	}
	e.metrics.IncrPrivateRouted()
}

// normalize runs the text pipeline: emoji shorthand substitution followed
// by the censored-word mask.
func (e *Engine) normalize(username, text string) string {
	content := e.replacer.Emojify(text)
	content, foundWords := e.moderator.Censor(content)
	if len(foundWords) > 0 {
		info := whatlanggo.Detect(text)
		e.metrics.AddCensoredWords(uint64(len(foundWords)))
		e.log.Warn("Censored message content",
			"username", username,
			"words", len(foundWords),
			"lang", info.Lang.Iso6391())
	}
	return content
}
