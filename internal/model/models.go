// Package model defines the data models for the country guessing game.
package model

import "time"

// Difficulty tiers for countries. Assigned once at catalog load time.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// unknownDifficultyRank pushes records with an unrecognized difficulty
// value behind every known tier when sorting the leaderboard.
const unknownDifficultyRank = 99

// Country represents an immutable catalog entry. Rows are seeded once at
// startup and never mutated afterwards.
type Country struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	InitialLetter string `db:"initial_letter" json:"initial_letter"`
	FlagCode      string `db:"flag_code" json:"flag_code"`
	Difficulty    string `db:"difficulty" json:"difficulty"`
}

// Ranking represents one saved win. Rows are append-only; CountryName and
// Difficulty are snapshots taken at save time, not references into the
// catalog.
type Ranking struct {
	ID          int64     `db:"id" json:"id"`
	PlayerName  string    `db:"player_name" json:"player_name"`
	CountryName string    `db:"country_name" json:"country_name"`
	TimeSpent   float64   `db:"time_spent" json:"time_spent"`
	Attempts    int       `db:"attempts" json:"attempts"`
	Difficulty  string    `db:"difficulty" json:"difficulty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	City        *string   `db:"city" json:"city,omitempty"`
}

// DifficultyRank maps a difficulty to its leaderboard sort rank. Harder
// wins sort first: hard=1, medium=2, easy=3. Unrecognized values sort
// last.
func DifficultyRank(difficulty string) int {
	switch difficulty {
	case DifficultyHard:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyEasy:
		return 3
	default:
		return unknownDifficultyRank
	}
}
