package basketball_nba

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// ValidateBroadcast checks if an NBA broadcast record can be matched
func ValidateBroadcast(record models.BroadcastRecord) error {
	if record.HomeTeam == "" {
		return fmt.Errorf("home team cannot be empty")
	}

	if record.AwayTeam == "" {
		return fmt.Errorf("away team cannot be empty")
	}

	if strings.EqualFold(record.HomeTeam, record.AwayTeam) {
		return fmt.Errorf("home and away teams cannot be the same")
	}

	if record.Date == "" {
		return fmt.Errorf("broadcast date cannot be empty")
	}

	if record.Channel == "" {
		return fmt.Errorf("broadcast has no channel")
	}

	// All-star and exhibition listings name conferences or nations, not franchises
	for _, team := range []string{record.HomeTeam, record.AwayTeam} {
		lower := strings.ToLower(team)
		if strings.Contains(lower, "all-star") || strings.Contains(lower, "all stars") {
			return fmt.Errorf("all-star listing %q is not a fixture", team)
		}
	}

	return nil
}
