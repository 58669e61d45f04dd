// Package chat holds the in-memory message history behind the chat view.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWelcome is the text of the message every store starts with.
const DefaultWelcome = "Bem-vindo ao chat! 👋"

// Store is an append-only, ordered list of messages. It belongs to a
// single view and isn't safe for concurrent use.
type Store struct {
	now   func() time.Time
	newID func() string
	msgs  []Message
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides the message ID generator. The generator must not
// repeat itself for the lifetime of the store.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// NewStore returns a store seeded with a single welcome message.
func NewStore(welcome string, opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.msgs = []Message{s.create(TypeWelcome, welcome)}
	return s
}

// Append adds a user message to the end of the history and returns it.
//
// No validation happens here: callers are expected to trim the text and
// drop empty submissions first.
func (s *Store) Append(content string) Message {
	m := s.create(TypeUser, content)
	s.msgs = append(s.msgs, m)
	return m
}

// Messages returns a copy of the history, oldest first.
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *Store) Len() int {
	return len(s.msgs)
}

func (s *Store) create(t Type, content string) Message {
	return Message{
		ID:        s.newID(),
		Content:   content,
		Timestamp: s.now(),
		Type:      t,
	}
}
