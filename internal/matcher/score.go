package matcher

import (
	"math"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// Field weights of the linear combination. Date is not weighted: it gates.
const (
	HomeWeight   = 0.35
	AwayWeight   = 0.35
	TimeWeight   = 0.15
	LeagueWeight = 0.15
)

// DateGate is the date score a pair must exceed to be scored at all.
// CompareDates only returns 0 or 1, so this means "same day".
const DateGate = 0.9

// Score compares one broadcast record with one fixture
func Score(record models.BroadcastRecord, fixture models.Fixture, profile models.SportProfile) models.MatchCandidate {
	home := CompareTeams(record.HomeTeam, fixture.Home, profile.TeamAliases)
	away := CompareTeams(record.AwayTeam, fixture.Away, profile.TeamAliases)
	date := CompareDates(record.Date, fixture.Date)
	kickoff := CompareTimes(record.Time, fixture.Time)
	league := CompareLeagues(record.League, fixture.League, profile.LeagueAliases)

	total := 0
	if date > DateGate {
		total = percent(HomeWeight*home + AwayWeight*away + TimeWeight*kickoff + LeagueWeight*league)
	}

	return models.MatchCandidate{
		Fixture: fixture,
		Total:   total,
		SubScores: models.SubScores{
			Home:   percent(home),
			Away:   percent(away),
			Date:   percent(date),
			Time:   percent(kickoff),
			League: percent(league),
		},
	}
}

func percent(v float64) int {
	return int(math.Round(100 * v))
}
