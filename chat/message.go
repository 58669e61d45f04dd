package chat

import "time"

// Type determines how a message is presented. It is fixed at creation.
type Type string

const (
	TypeWelcome Type = "welcome"
	TypeUser    Type = "user"

	// TypeSystem is reserved for notices that don't come from the user.
	// Nothing in the widget creates one yet.
	TypeSystem Type = "system"
)

// Message is a single entry in the chat.
type Message struct {
	ID        string    // Render key, unique within a store
	Content   string    // Stored and shown verbatim
	Timestamp time.Time // Creation time
	Type      Type
}
