package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"An American Werewolf", "american werewolf"},
		{"Fast & Furious", "fast and furious"},
		{"Léon: The Professional", "leon professional"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"Rocky II", "rocky 2"},
		{"  Extra   Spaces  ", "extra spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}

func TestNormalizeRomanNumerals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rocky ii", "rocky 2"},
		{"star wars episode iv", "star wars episode 4"},
		{"vii days", "vii days"},
		{"i robot", "i robot"},
		{"american history x", "american history x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRomanNumerals(tt.input))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Positive(t, Compare("The Matrix", "Alien"), "articles are ignored")
	assert.Negative(t, Compare("Amélie", "Brazil"), "accents are folded")
	assert.Zero(t, Compare("Alien", "Alien"))
	assert.NotZero(t, Compare("The Thing", "Thing"), "raw strings break ties")
}
