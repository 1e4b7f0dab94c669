package matcher

import (
	"testing"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical", a: "Liverpool", b: "Liverpool", expected: 1.0},
		{name: "equal after normalization", a: "Arsenal FC", b: "arsenal", expected: 1.0},
		{name: "substring", a: "Inter", b: "Internazionale", expected: SubstringSimilarity},
		{name: "first empty", a: "", b: "Liverpool", expected: 0},
		{name: "second empty", a: "Liverpool", b: "", expected: 0},
		{name: "normalizes to nothing", a: "!!!", b: "Liverpool", expected: 0},
		{name: "one edit", a: "Chelsea", b: "Chelsey", expected: 1 - 1.0/7},
		{name: "unrelated", a: "abc", b: "xyz", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b, nil), 1e-9)
		})
	}
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	for _, name := range []string{"Liverpool", "Real Madrid", "Los Angeles Lakers", "Bayern München"} {
		assert.Equal(t, 1.0, Similarity(name, name, nil), name)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	aliases := []models.Alias{{Pattern: "man utd", Replacement: "manchester united"}}
	pairs := [][2]string{
		{"Man Utd", "Manchester United"},
		{"Inter", "Internazionale"},
		{"Chelsea", "Chelsey"},
		{"Atletico Madrid", "Athletic Bilbao"},
		{"", "Liverpool"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1], aliases), Similarity(p[1], p[0], aliases), "%q vs %q", p[0], p[1])
	}
}

func TestSimilarity_Alias(t *testing.T) {
	aliases := []models.Alias{{Pattern: "man utd", Replacement: "manchester united"}}

	assert.Equal(t, 1.0, Similarity("Man Utd", "Manchester United", aliases))
	assert.Less(t, Similarity("Man Utd", "Manchester United", nil), 1.0)
}
