package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain ascii", "Brasil", "brasil"},
		{"accents folded", "Japão", "japao"},
		{"cedilla and accents", "França", "franca"},
		{"whitespace trimmed", "  Peru  ", "peru"},
		{"mixed", " ÁFRICA do Sul ", "africa do sul"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

// Normalization must be idempotent: applying it to its own output changes
// nothing.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Japão", "  Côte d'Ivoire ", "ESPANHA", "São Tomé e Príncipe", "x"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("brasil", "brasil"))
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("", "portugal"))
	// Symmetric
	assert.Equal(t, Ratio("chile", "china"), Ratio("china", "chile"))
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		guess   string
		target  string
		matches bool
	}{
		{"exact", "Brasil", "Brasil", true},
		{"case insensitive", "brasil", "Brasil", true},
		{"accents ignored", "Japao", "Japão", true},
		{"whitespace ignored", " Portugal ", "Portugal", true},
		{"one substitution in long name", "Argemtina", "Argentina", true},
		{"one substitution elsewhere", "Indonésio", "Indonésia", true},
		{"different country similar length", "Portugal", "Paraguai", false},
		{"entirely different word", "Alemanha", "Argentina", false},
		{"empty guess", "", "Brasil", false},
		{"spaces only", "   ", "Brasil", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, Matches(tt.guess, tt.target))
		})
	}
}
