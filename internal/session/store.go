package session

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory and forgets them after ttl of inactivity.
type Store struct {
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewStore(logger *slog.Logger, ttl time.Duration, rnd *rand.Rand) *Store {
	if rnd == nil {
		rnd = mines.NewRand()
	}
	return &Store{
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
		rnd:      rnd,
	}
}

// Create starts a new game with the given settings.
func (s *Store) Create(settings mines.Settings) (*Session, error) {
	// each game gets its own generator so sessions never share one
	s.rndMu.Lock()
	r := rand.New(rand.NewPCG(s.rnd.Uint64(), s.rnd.Uint64()))
	s.rndMu.Unlock()

	game, err := mines.NewGame(settings, r)
	if err != nil {
		return nil, err
	}
	session := newSession(game, s.now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Debug("session created",
		slog.String("id", session.ID.String()),
		slog.String("settings", settings.String()),
	)
	return session, nil
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Evict drops every session idle for longer than the ttl and returns how
// many were removed.
func (s *Store) Evict() int {
	deadline := s.now().Add(-s.ttl)

	s.mu.RLock()
	var stale []uuid.UUID
	for id, session := range s.sessions {
		if session.idleSince().Before(deadline) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	if len(stale) == 0 {
		return 0
	}

	s.mu.Lock()
	for _, id := range stale {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	return len(stale)
}

// Sweep calls Evict every interval until ctx is done.
func (s *Store) Sweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Evict(); n > 0 {
				s.logger.Info("evicted idle sessions",
					slog.Int("count", n),
					slog.Int("remaining", s.Len()),
				)
			}
		}
	}
}
