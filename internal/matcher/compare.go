package matcher

import (
	"strconv"
	"strings"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// NeutralScore is returned when a field is absent or unparsable on either side
const NeutralScore = 0.5

// League comparison scores
const (
	LeagueContainsScore   = 0.8
	LeagueSharedWordScore = 0.6
	minSharedWordLength   = 4
)

// timeTier maps a maximum kickoff difference in minutes to a score
type timeTier struct {
	maxMinutes int
	score      float64
}

var timeTiers = []timeTier{
	{maxMinutes: 0, score: 1.0},
	{maxMinutes: 15, score: 0.9},
	{maxMinutes: 30, score: 0.7},
	{maxMinutes: 60, score: 0.5},
	{maxMinutes: 120, score: 0.3},
}

// CompareTeams scores two team names. Home is only ever compared with home and away with away.
func CompareTeams(a, b string, aliases []models.Alias) float64 {
	return Similarity(a, b, aliases)
}

// CompareDates returns 1 when both values name the same calendar day, else 0
func CompareDates(d1, d2 string) float64 {
	day1 := datePart(d1)
	day2 := datePart(d2)
	if day1 == "" || day2 == "" {
		return 0
	}
	if day1 == day2 {
		return 1.0
	}
	return 0
}

// datePart drops any "T..." time component from an ISO date
func datePart(d string) string {
	if i := strings.IndexByte(d, 'T'); i >= 0 {
		d = d[:i]
	}
	return strings.TrimSpace(d)
}

// CompareTimes scores the distance between two HH:MM[:SS] kickoff times
func CompareTimes(t1, t2 string) float64 {
	if t1 == "" || t2 == "" {
		return NeutralScore
	}

	m1, ok1 := minutesSinceMidnight(t1)
	m2, ok2 := minutesSinceMidnight(t2)
	if !ok1 || !ok2 {
		return NeutralScore
	}

	diff := m1 - m2
	if diff < 0 {
		diff = -diff
	}

	for _, tier := range timeTiers {
		if diff <= tier.maxMinutes {
			return tier.score
		}
	}
	return 0
}

func minutesSinceMidnight(t string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(t), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, false
		}
	}

	return hours*60 + minutes, true
}

// CompareLeagues scores two league names. l1 is first looked up verbatim in mapping.
func CompareLeagues(l1, l2 string, mapping map[string]string) float64 {
	if l1 == "" || l2 == "" {
		return NeutralScore
	}

	if mapped, ok := mapping[l1]; ok {
		l1 = mapped
	}

	a := strings.ToLower(strings.TrimSpace(l1))
	b := strings.ToLower(strings.TrimSpace(l2))

	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return LeagueContainsScore
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(a) {
		words[w] = struct{}{}
	}
	for _, w := range strings.Fields(b) {
		if _, shared := words[w]; shared && len(w) >= minSharedWordLength {
			return LeagueSharedWordScore
		}
	}
	return 0
}
