// Package session provides the per-player session store. Entries are
// keyed by an opaque cookie token, so concurrent players never observe
// each other's game state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"country-guess/internal/game"
)

// Player holds everything remembered for one token: the current game, if
// any, and the id of the last country served so the selector can avoid
// immediate repeats across consecutive games.
type Player struct {
	mu sync.Mutex

	LastCountryID int64
	Game          *game.Session

	lastSeen time.Time
}

// Lock acquires the player's mutex. Callers hold it across a full
// read-evaluate-mutate cycle of the game state.
func (p *Player) Lock() { p.mu.Lock() }

// Unlock releases the player's mutex.
func (p *Player) Unlock() { p.mu.Unlock() }

// Store is a concurrency-safe in-memory map of players keyed by token.
// State is lost on process restart, matching the ephemeral nature of a
// game session.
type Store struct {
	mu      sync.RWMutex
	players map[string]*Player
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{players: make(map[string]*Player)}
}

// Get returns the player for token, or nil if none exists.
func (s *Store) Get(token string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[token]; ok {
		p.lastSeen = time.Now()
		return p
	}
	return nil
}

// GetOrCreate returns the player for token, creating a fresh one if
// needed.
func (s *Store) GetOrCreate(token string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[token]; ok {
		p.lastSeen = time.Now()
		return p
	}
	p := &Player{lastSeen: time.Now()}
	s.players[token] = p
	return p
}

// Delete removes the player for token.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, token)
}

// Len returns the number of tracked players.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// Sweep drops players idle for longer than ttl and returns how many were
// removed.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, p := range s.players {
		if p.lastSeen.Before(cutoff) {
			delete(s.players, token)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired players every interval until ctx is
// cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(ttl); n > 0 {
					log.Debug().Int("removed", n).Msg("Swept expired sessions")
				}
			}
		}
	}()
}
