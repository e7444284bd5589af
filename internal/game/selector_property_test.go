// Property-based tests for country selection.
package game

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"country-guess/internal/model"
)

// TestPickProperty checks that for any pool, the pick is always a pool
// member, and never the previous pick while an alternative exists.
func TestPickProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numCountries := rapid.IntRange(1, 40).Draw(t, "numCountries")

		pool := make([]model.Country, numCountries)
		ids := make(map[int64]bool, numCountries)
		for i := 0; i < numCountries; i++ {
			id := int64(i + 1)
			pool[i] = model.Country{ID: id}
			ids[id] = true
		}

		// lastID may or may not refer to a pool member
		lastID := rapid.Int64Range(0, int64(numCountries)+5).Draw(t, "lastID")
		seed := rapid.Int64().Draw(t, "seed")
		rng := rand.New(rand.NewSource(seed))

		c, err := Pick(pool, lastID, rng)
		if err != nil {
			t.Fatalf("Pick failed on non-empty pool: %v", err)
		}

		if !ids[c.ID] {
			t.Fatalf("Picked country %d is not in the pool", c.ID)
		}
		if numCountries > 1 && c.ID == lastID {
			t.Fatalf("Picked the previous country %d from a pool of %d", lastID, numCountries)
		}
	})
}
