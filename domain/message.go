// Package domain contains core concepts of the chat service.
// This file defines Message records and related rules.
// Messages are immutable once created and owned by the history store.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a public chat record, broadcast to every live connection.
type Message struct {
	ID       uuid.UUID
	Username string
	Content  string
	At       time.Time
}

// PrivateMessage is a direct record between two usernames. It is persisted
// even when the receiver is offline so it can be replayed from history.
type PrivateMessage struct {
	ID       uuid.UUID
	Sender   string
	Receiver string
	Content  string
	At       time.Time
}
