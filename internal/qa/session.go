package qa

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Turn is one question/answer exchange in a chat session.
type Turn struct {
	ID       string
	Question string
	Answer   string
	At       time.Time
}

// Session holds the visible conversation history for one running chat.
// History lives only for the lifetime of the session; nothing is persisted
// across sessions.
type Session struct {
	mu    sync.Mutex
	id    string
	turns []Turn
}

// NewSession creates an empty chat session.
func NewSession() *Session {
	return &Session{id: uuid.New().String()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Append records a completed question/answer turn and returns it.
func (s *Session) Append(question, answer string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := Turn{
		ID:       uuid.New().String(),
		Question: question,
		Answer:   answer,
		At:       time.Now(),
	}
	s.turns = append(s.turns, turn)
	return turn
}

// Turns returns a copy of the session history in order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of recorded turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Clear drops all recorded turns.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
