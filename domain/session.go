// Package domain contains core concepts of the chat service.
// This file defines Sessions, the binding between a username and the
// connection currently speaking for it. No runtime, network, or storage
// logic should be added here.
package domain

import "time"

// ConnectionID is the transport-assigned identity of a single open channel.
// It is opaque to the domain and never persisted beyond presence records.
type ConnectionID string

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Session is the live binding of a username to a connection, plus its
// presence status. LastSeen is set only when the session goes offline.
type Session struct {
	Username     string
	ConnectionID ConnectionID
	Status       Status
	LastSeen     *time.Time
}
