package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Session owns one game and serialises access to it.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	game     *mines.Game
	lastUsed time.Time
	now      func() time.Time
}

func newSession(game *mines.Game, now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: t,
		game:      game,
		lastUsed:  t,
		now:       now,
	}
}

// Do feeds the game clock and then runs fn while holding the session lock.
// fn must not keep the game after it returns.
func (s *Session) Do(fn func(g *mines.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now()
	s.lastUsed = t
	s.game.Tick(t.Sub(s.CreatedAt).Milliseconds())
	fn(s.game)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
