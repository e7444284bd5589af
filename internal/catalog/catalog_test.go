package catalog

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-guess/internal/model"
)

// Every tier must have members in the fixed catalog, or some difficulty
// becomes unplayable.
func TestCountries_EveryTierPopulated(t *testing.T) {
	byTier := map[string]int{}
	for _, c := range Countries() {
		byTier[c.Difficulty]++
	}

	assert.Equal(t, len(easyCountries), byTier[model.DifficultyEasy])
	assert.Equal(t, len(mediumCountries), byTier[model.DifficultyMedium])
	assert.Greater(t, byTier[model.DifficultyHard], 0)
}

func TestCountries_Shape(t *testing.T) {
	countries := Countries()
	require.NotEmpty(t, countries)

	seen := map[string]bool{}
	for _, c := range countries {
		assert.False(t, seen[c.Name], "duplicate country %q", c.Name)
		seen[c.Name] = true

		assert.Len(t, c.FlagCode, 2, "country %q", c.Name)
		assert.Equal(t, 1, utf8.RuneCountInString(c.InitialLetter), "country %q", c.Name)

		first, _ := utf8.DecodeRuneInString(c.Name)
		gotFirst, _ := utf8.DecodeRuneInString(c.InitialLetter)
		assert.Equal(t, string(first), string(gotFirst), "initial letter of %q must keep its accent", c.Name)
	}
}

func TestCountries_KnownDifficulties(t *testing.T) {
	byName := map[string]model.Country{}
	for _, c := range Countries() {
		byName[c.Name] = c
	}

	assert.Equal(t, model.DifficultyEasy, byName["Brasil"].Difficulty)
	assert.Equal(t, model.DifficultyEasy, byName["Japão"].Difficulty)
	assert.Equal(t, model.DifficultyMedium, byName["Chile"].Difficulty)
	assert.Equal(t, model.DifficultyMedium, byName["África do Sul"].Difficulty)
	assert.Equal(t, model.DifficultyHard, byName["Butão"].Difficulty)
	assert.Equal(t, model.DifficultyHard, byName["Vaticano"].Difficulty)
}
