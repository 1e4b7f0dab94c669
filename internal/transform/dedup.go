package transform

import (
	"strings"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// Dedup keeps one row per (fixture, channel, country), compared case-insensitively,
// retaining the highest confidence. Output order follows first occurrence of each key;
// equal confidence keeps the earlier row.
func Dedup(rows []models.PersistableBroadcast) []models.PersistableBroadcast {
	if len(rows) == 0 {
		return nil
	}

	index := make(map[string]int, len(rows))
	unique := make([]models.PersistableBroadcast, 0, len(rows))

	for _, row := range rows {
		key := DedupKey(row)
		if i, seen := index[key]; seen {
			if row.ConfidenceScore > unique[i].ConfidenceScore {
				unique[i] = row
			}
			continue
		}
		index[key] = len(unique)
		unique = append(unique, row)
	}

	return unique
}

// DedupKey builds the (fixture, channel, country) identity of a row
func DedupKey(row models.PersistableBroadcast) string {
	return row.FixtureID + "|" + strings.ToLower(row.Channel) + "|" + strings.ToLower(row.Country)
}
