// Package service provides business logic implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-guess/internal/game"
	"country-guess/internal/model"
	"country-guess/internal/pkg/session"
)

// Common errors for game operations.
var (
	// ErrNoActiveGame is returned when a guess, give-up, or save arrives
	// without a game in progress for the session token.
	ErrNoActiveGame = errors.New("no game in progress")
	// ErrPlayerNameRequired is returned when a save is missing the
	// player name.
	ErrPlayerNameRequired = errors.New("player name is required")
)

// CountryStore is the slice of the country repository the game needs.
type CountryStore interface {
	ListByDifficulties(ctx context.Context, tiers []string) ([]model.Country, error)
}

// RankingStore is the slice of the ranking repository the game needs.
type RankingStore interface {
	Create(ctx context.Context, rec *model.Ranking) (*model.Ranking, error)
	ListAll(ctx context.Context) ([]*model.Ranking, error)
}

// StartResult is the response to a successful game start. Only the
// initial letter leaks; the target stays server-side.
type StartResult struct {
	InitialLetter string `json:"initial_letter"`
}

// GuessResult is the response to a guess. Fields are populated according
// to Status: a win carries the elapsed time, a loss the reveal without
// it, and a wrong guess the running wrong-guess list.
type GuessResult struct {
	Status       game.GuessStatus `json:"status"`
	Message      string           `json:"message,omitempty"`
	CountryName  string           `json:"country_name,omitempty"`
	FlagCode     string           `json:"flag_code,omitempty"`
	TimeSpent    float64          `json:"time_spent,omitempty"`
	WrongGuesses []string         `json:"wrong_guesses,omitempty"`
	Attempts     int              `json:"attempts"`
}

// GiveUpResult is the response to abandoning a game.
type GiveUpResult struct {
	Status      string `json:"status"`
	CountryName string `json:"country_name"`
	FlagCode    string `json:"flag_code"`
	Attempts    int    `json:"attempts"`
}

// GameService owns the lifecycle of game sessions: selection of the
// target country, guess evaluation, terminal transitions, and recording
// wins to the leaderboard.
type GameService struct {
	countries CountryStore
	rankings  RankingStore
	sessions  *session.Store
	maxWrong  int

	now func() time.Time
}

// NewGameService creates a new GameService instance.
func NewGameService(countries CountryStore, rankings RankingStore, sessions *session.Store, maxWrongGuesses int) *GameService {
	return &GameService{
		countries: countries,
		rankings:  rankings,
		sessions:  sessions,
		maxWrong:  maxWrongGuesses,
		now:       time.Now,
	}
}

// Start begins a fresh game for the session token at the requested
// difficulty and returns the target's initial letter. The previous game
// on the token, finished or not, is discarded. The pick avoids the last
// country served to the same token.
func (s *GameService) Start(ctx context.Context, token, difficulty string) (*StartResult, error) {
	pool, err := s.countries.ListByDifficulties(ctx, game.PoolTiers(difficulty))
	if err != nil {
		return nil, fmt.Errorf("failed to load country pool: %w", err)
	}

	p := s.sessions.GetOrCreate(token)
	p.Lock()
	defer p.Unlock()

	target, err := game.Pick(pool, p.LastCountryID, nil)
	if err != nil {
		return nil, err
	}

	p.Game = game.NewSession(target, s.now(), s.maxWrong)
	p.LastCountryID = target.ID

	return &StartResult{InitialLetter: target.InitialLetter}, nil
}

// Guess submits one free-text guess against the token's active game.
func (s *GameService) Guess(token, raw string) (*GuessResult, error) {
	p := s.sessions.Get(token)
	if p == nil {
		return nil, ErrNoActiveGame
	}

	p.Lock()
	defer p.Unlock()

	g := p.Game
	if g == nil {
		return nil, ErrNoActiveGame
	}

	status, err := g.ApplyGuess(raw)
	if err != nil {
		return nil, err
	}

	switch status {
	case game.GuessWin:
		return &GuessResult{
			Status:      game.GuessWin,
			CountryName: g.Target.Name,
			FlagCode:    g.Target.FlagCode,
			TimeSpent:   g.Elapsed(s.now()),
			Attempts:    g.Attempts,
		}, nil
	case game.GuessLose:
		return &GuessResult{
			Status:       game.GuessLose,
			CountryName:  g.Target.Name,
			FlagCode:     g.Target.FlagCode,
			WrongGuesses: g.WrongGuesses,
			Attempts:     g.Attempts,
		}, nil
	default:
		return &GuessResult{
			Status:       game.GuessWrong,
			Message:      fmt.Sprintf("%q não é o país correto. Tente novamente.", raw),
			WrongGuesses: g.WrongGuesses,
			Attempts:     g.Attempts,
		}, nil
	}
}

// GiveUp abandons the token's current game and reveals the target. The
// last-country memory survives, so the next game still avoids an
// immediate repeat.
func (s *GameService) GiveUp(token string) (*GiveUpResult, error) {
	p := s.sessions.Get(token)
	if p == nil {
		return nil, ErrNoActiveGame
	}

	p.Lock()
	defer p.Unlock()

	g := p.Game
	if g == nil {
		return nil, ErrNoActiveGame
	}

	g.GiveUp()
	p.Game = nil

	return &GiveUpResult{
		Status:      "given_up",
		CountryName: g.Target.Name,
		FlagCode:    g.Target.FlagCode,
		Attempts:    g.Attempts,
	}, nil
}

// Save records the token's won game to the leaderboard under playerName
// and clears the session. Only a win may be saved; the elapsed time is
// recomputed at save time rather than trusting the value handed out when
// the win was announced.
func (s *GameService) Save(ctx context.Context, token, playerName string) error {
	p := s.sessions.Get(token)
	if p == nil {
		return ErrNoActiveGame
	}

	p.Lock()
	defer p.Unlock()

	g := p.Game
	if g == nil {
		return ErrNoActiveGame
	}
	if err := g.CanSave(); err != nil {
		return err
	}
	if playerName == "" {
		return ErrPlayerNameRequired
	}

	rec := &model.Ranking{
		PlayerName:  playerName,
		CountryName: g.Target.Name,
		TimeSpent:   g.Elapsed(s.now()),
		Attempts:    g.Attempts,
		Difficulty:  g.Target.Difficulty,
	}
	if _, err := s.rankings.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to save ranking: %w", err)
	}

	s.sessions.Delete(token)
	return nil
}
