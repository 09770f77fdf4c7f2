// Package event defines the outbound events pushed to connected clients.
package event

import (
	"time"

	"sockchat/domain"
)

// DomainEvent is any payload delivered to one or all live connections.
// Name returns the wire event name clients subscribe to.
type DomainEvent interface {
	Name() string
}

// ChatHistory carries the snapshot of prior public messages, sent once,
// privately, right after a successful registration.
type ChatHistory struct {
	Messages []domain.Message
}

func (ChatHistory) Name() string { return "chat history" }

// UserStatus announces an online/offline presence transition.
// LastSeen is only populated on offline transitions.
type UserStatus struct {
	Username string
	Status   domain.Status
	LastSeen *time.Time
}

func (UserStatus) Name() string { return "user status" }

// OnlineUsers carries the full presence listing, broadcast after a
// registration so clients can rebuild their roster.
type OnlineUsers struct {
	Sessions []domain.Session
}

func (OnlineUsers) Name() string { return "online users" }

type ChatMessage struct {
	Message domain.Message
}

func (ChatMessage) Name() string { return "chat message" }

// PrivateMessage is delivered to the sender and the receiver only.
type PrivateMessage struct {
	Message domain.PrivateMessage
}

func (PrivateMessage) Name() string { return "private message" }

type TypingUsers struct {
	Usernames []string
}

func (TypingUsers) Name() string { return "typing users" }

// Error is sent privately to a connection whose registration failed.
type Error struct {
	Reason string
}

func (Error) Name() string { return "error" }
