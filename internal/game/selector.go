// Package game implements the core rules of the country guessing game:
// difficulty-scoped selection, typo-tolerant name matching, and the
// per-player session state machine.
package game

import (
	"errors"
	"math/rand"

	"country-guess/internal/model"
)

// ErrEmptyPool is returned when no countries match the requested
// difficulty.
var ErrEmptyPool = errors.New("no countries available for difficulty")

// PoolTiers resolves a requested difficulty to the set of tiers eligible
// for selection. The policy is cumulative: harder requests include every
// easier tier. An unrecognized difficulty returns nil, which callers
// treat as the whole catalog.
func PoolTiers(difficulty string) []string {
	switch difficulty {
	case model.DifficultyEasy:
		return []string{model.DifficultyEasy}
	case model.DifficultyMedium:
		return []string{model.DifficultyEasy, model.DifficultyMedium}
	case model.DifficultyHard:
		return []string{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	default:
		return nil
	}
}

// Pick selects one country uniformly at random from the pool. When the
// pool holds more than one entry it resamples until the pick differs from
// lastID, so the same country is never served twice in a row. A
// single-entry pool returns its only country even if it repeats.
//
// rng may be nil, in which case the shared math/rand source is used.
func Pick(pool []model.Country, lastID int64, rng *rand.Rand) (model.Country, error) {
	if len(pool) == 0 {
		return model.Country{}, ErrEmptyPool
	}
	if len(pool) == 1 {
		return pool[0], nil
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for {
		c := pool[intn(len(pool))]
		if c.ID != lastID {
			return c, nil
		}
	}
}
