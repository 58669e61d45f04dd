package chat

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SeedsWelcome(t *testing.T) {
	s := NewStore(DefaultWelcome)

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, TypeWelcome, msgs[0].Type)
	assert.Equal(t, DefaultWelcome, msgs[0].Content)
	assert.NotEmpty(t, msgs[0].ID)
	assert.False(t, msgs[0].Timestamp.IsZero())
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	s := NewStore("hello")
	inputs := []string{"one", "two", "three", "four"}
	for _, in := range inputs {
		m := s.Append(in)
		assert.Equal(t, TypeUser, m.Type)
		assert.Equal(t, in, m.Content)
	}

	msgs := s.Messages()
	require.Len(t, msgs, len(inputs)+1)
	assert.Equal(t, TypeWelcome, msgs[0].Type)
	for i, in := range inputs {
		assert.Equal(t, in, msgs[i+1].Content)
		assert.Equal(t, TypeUser, msgs[i+1].Type)
	}
	assert.Equal(t, len(inputs)+1, s.Len())
}

func TestStore_UniqueIDs(t *testing.T) {
	s := NewStore("hello")
	for i := 0; i < 100; i++ {
		s.Append(fmt.Sprintf("msg %d", i))
	}

	seen := map[string]bool{}
	for _, m := range s.Messages() {
		assert.False(t, seen[m.ID], "duplicate id %q", m.ID)
		seen[m.ID] = true
	}
}

func TestStore_ContentVerbatim(t *testing.T) {
	s := NewStore("hello")
	m := s.Append("  <b>not html</b>\n")
	assert.Equal(t, "  <b>not html</b>\n", m.Content)
}

func TestStore_Options(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s := NewStore("hi",
		WithClock(func() time.Time { return at }),
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	s.Append("there")

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "id-1", msgs[0].ID)
	assert.Equal(t, "id-2", msgs[1].ID)
	assert.Equal(t, at, msgs[1].Timestamp)
}

func TestStore_MessagesIsACopy(t *testing.T) {
	s := NewStore("hi")
	msgs := s.Messages()
	msgs[0].Content = "changed"
	assert.Equal(t, "hi", s.Messages()[0].Content)
}
