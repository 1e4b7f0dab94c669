package matcher

import (
	"strings"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/agnivade/levenshtein"
)

// SubstringSimilarity is returned when one normalized name contains the other
const SubstringSimilarity = 0.9

// Similarity returns a 0-1 score for two names after normalization.
// Equal names score 1, containment scores SubstringSimilarity, anything else falls back
// to 1 - levenshtein/maxLen.
func Similarity(a, b string, aliases []models.Alias) float64 {
	if a == "" || b == "" {
		return 0
	}

	na := Normalize(a, aliases)
	nb := Normalize(b, aliases)

	// Names made entirely of punctuation or affixes normalize to nothing
	if na == "" || nb == "" {
		return 0
	}

	if na == nb {
		return 1.0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return SubstringSimilarity
	}

	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}

	distance := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(distance)/float64(maxLen)
}
