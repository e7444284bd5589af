package game

import (
	"errors"
	"math"
	"time"

	"country-guess/internal/model"
)

// DefaultMaxWrongGuesses is the wrong-guess budget that ends a game in a
// loss.
const DefaultMaxWrongGuesses = 10

// State identifies where a session is in its lifecycle. Only an active
// session accepts guesses.
type State string

const (
	StateActive  State = "active"
	StateWon     State = "won"
	StateLost    State = "lost"
	StateGivenUp State = "given_up"
)

// Guess outcomes, as reported to clients.
type GuessStatus string

const (
	GuessWin   GuessStatus = "win"
	GuessLose  GuessStatus = "lose"
	GuessWrong GuessStatus = "wrong"
)

var (
	// ErrGameOver is returned for guesses against a finished session.
	ErrGameOver = errors.New("game is already over")
	// ErrNotWon is returned when a save is attempted from any state
	// other than a win.
	ErrNotWon = errors.New("game was not won")
)

// Session is the state of one game attempt. It is a plain state machine:
// the target, clock readings, and guesses flow in through arguments, so
// every transition is directly testable.
type Session struct {
	Target       model.Country
	StartTime    time.Time
	Attempts     int
	WrongGuesses []string
	State        State

	maxWrong int
}

// NewSession starts a session in the active state against target.
func NewSession(target model.Country, now time.Time, maxWrong int) *Session {
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrongGuesses
	}
	return &Session{
		Target:       target,
		StartTime:    now,
		WrongGuesses: []string{},
		State:        StateActive,
		maxWrong:     maxWrong,
	}
}

// ApplyGuess evaluates one guess and advances the state machine.
// Every guess costs an attempt, even empty or repeated ones. A wrong
// guess is recorded only when its normalized form is non-empty and the
// raw text was not already recorded verbatim; filling the wrong-guess
// budget loses the game.
func (s *Session) ApplyGuess(raw string) (GuessStatus, error) {
	if s.State != StateActive {
		return "", ErrGameOver
	}

	s.Attempts++

	if Matches(raw, s.Target.Name) {
		s.State = StateWon
		return GuessWin, nil
	}

	if Normalize(raw) != "" && !s.alreadyGuessed(raw) {
		s.WrongGuesses = append(s.WrongGuesses, raw)
	}

	if len(s.WrongGuesses) >= s.maxWrong {
		s.State = StateLost
		return GuessLose, nil
	}

	return GuessWrong, nil
}

// GiveUp abandons the game from any state that still has one.
func (s *Session) GiveUp() {
	s.State = StateGivenUp
}

// Elapsed returns the seconds since the session started, rounded to two
// decimals.
func (s *Session) Elapsed(now time.Time) float64 {
	secs := now.Sub(s.StartTime).Seconds()
	return math.Round(secs*100) / 100
}

// CanSave reports whether the session may be recorded to the leaderboard.
// Only a win qualifies.
func (s *Session) CanSave() error {
	if s.State != StateWon {
		return ErrNotWon
	}
	return nil
}

func (s *Session) alreadyGuessed(raw string) bool {
	for _, g := range s.WrongGuesses {
		if g == raw {
			return true
		}
	}
	return false
}
