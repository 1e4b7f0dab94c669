package matcher

import (
	"testing"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	aliases := []models.Alias{
		{Pattern: "man utd", Replacement: "manchester united"},
		{Pattern: "spurs", Replacement: "tottenham hotspur"},
	}

	tests := []struct {
		name     string
		input    string
		aliases  []models.Alias
		expected string
	}{
		{name: "lowercase and trim", input: "  Liverpool ", expected: "liverpool"},
		{name: "punctuation stripped", input: "St. Etienne!", expected: "st etienne"},
		{name: "whitespace collapsed", input: "Real   \t Madrid", expected: "real madrid"},
		{name: "suffix stripped", input: "Arsenal FC", expected: "arsenal"},
		{name: "prefix stripped", input: "AC Milan", expected: "milan"},
		{name: "prefix and suffix", input: "AFC Bournemouth", expected: "bournemouth"},
		{name: "stacked suffixes", input: "Manchester United FC", expected: "manchester"},
		{name: "bare suffix word kept", input: "City", expected: "city"},
		{name: "alias applied", input: "Man Utd", aliases: aliases, expected: "manchester"},
		{name: "alias inside longer name", input: "Spurs Women", aliases: aliases, expected: "tottenham hotspur women"},
		{name: "empty", input: "", expected: ""},
		{name: "only punctuation", input: "---", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input, tt.aliases))
		})
	}
}

func TestNormalize_AliasesFireInOrder(t *testing.T) {
	aliases := []models.Alias{
		{Pattern: "utd", Replacement: "united"},
		{Pattern: "man united", Replacement: "manchester united"},
	}

	// The first alias rewrites the name so that the second one matches too
	assert.Equal(t, "manchester", Normalize("Man Utd", aliases))

	reversed := []models.Alias{aliases[1], aliases[0]}
	assert.Equal(t, "man", Normalize("Man Utd", reversed))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Manchester United FC",
		"FC Barcelona",
		"Borussia Mönchengladbach",
		"  Paris Saint-Germain  ",
		"AS Roma",
		"Brooklyn Nets",
		"fc",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input, nil)
		assert.Equal(t, once, Normalize(once, nil), "input %q", input)
	}
}
