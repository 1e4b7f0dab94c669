package matcher

import (
	"sort"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// AcceptanceThreshold is the minimum total a candidate needs to be linked
const AcceptanceThreshold = 70

// FindBestMatch scores every candidate and returns the highest total at or above
// AcceptanceThreshold. Ties keep candidate order. ok is false when nothing qualifies,
// which is the normal outcome for broadcasts of fixtures the directory does not list.
func FindBestMatch(record models.BroadcastRecord, candidates []models.Fixture, profile models.SportProfile) (models.MatchCandidate, bool) {
	accepted := make([]models.MatchCandidate, 0, len(candidates))
	for _, fixture := range candidates {
		candidate := Score(record, fixture, profile)
		if candidate.Total >= AcceptanceThreshold {
			accepted = append(accepted, candidate)
		}
	}

	if len(accepted) == 0 {
		return models.MatchCandidate{}, false
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Total > accepted[j].Total
	})

	return accepted[0], true
}
