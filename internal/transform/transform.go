package transform

import (
	"math"
	"strings"

	"github.com/XavierBriggs/Herald/internal/matcher"
	"github.com/XavierBriggs/Herald/pkg/models"
)

// CreatedBySystem tags rows created by the linker rather than by users
const CreatedBySystem = "system"

// Confidence remap: accepted match scores [ScoreFloor, ScoreCeiling] map linearly
// onto displayed confidence [ConfidenceFloor, ConfidenceCeiling]
const (
	ScoreFloor        = matcher.AcceptanceThreshold
	ScoreCeiling      = 100
	ConfidenceFloor   = 40
	ConfidenceCeiling = 70
)

// Transformer turns accepted matches into persistable broadcast rows
type Transformer struct {
	source    string
	countries CountryTable
}

// NewTransformer creates a transformer stamping rows with the given provenance source
func NewTransformer(source string, countries CountryTable) *Transformer {
	if countries == nil {
		countries = DefaultCountryTable()
	}
	return &Transformer{
		source:    source,
		countries: countries,
	}
}

// Channel is one channel parsed from an announcement
type Channel struct {
	Name    string
	Country string
}

// ToBroadcastRows emits one row per channel announced in the record
func (t *Transformer) ToBroadcastRows(fixtureID string, record models.BroadcastRecord, matchScore int) []models.PersistableBroadcast {
	channels := t.ParseChannels(record.Channel, record.Country)
	if len(channels) == 0 {
		return nil
	}

	confidence := ConfidenceFromScore(matchScore)

	rows := make([]models.PersistableBroadcast, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, models.PersistableBroadcast{
			FixtureID:       fixtureID,
			Country:         ch.Country,
			Channel:         ch.Name,
			CreatedBy:       CreatedBySystem,
			Source:          t.source,
			SourceID:        record.EventID,
			ConfidenceScore: confidence,
		})
	}
	return rows
}

// ParseChannels splits a comma-joined channel field. An item ending in "(Country)"
// overrides the record's country for that channel.
// "ESPN, Sky Sports (UK)" -> [{ESPN, <fallback>}, {Sky Sports, UK}]
func (t *Transformer) ParseChannels(field, fallbackCountry string) []Channel {
	fallback := t.countries.Normalize(fallbackCountry)

	var channels []Channel
	for _, token := range strings.Split(field, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, country := token, fallback
		if strings.HasSuffix(token, ")") {
			if open := strings.LastIndexByte(token, '('); open > 0 {
				override := strings.TrimSpace(token[open+1 : len(token)-1])
				if override != "" {
					name = strings.TrimSpace(token[:open])
					country = t.countries.Normalize(override)
				}
			}
		}

		if name == "" {
			continue
		}
		channels = append(channels, Channel{Name: name, Country: country})
	}
	return channels
}

// ConfidenceFromScore maps a match score onto the displayed confidence range, clamped
func ConfidenceFromScore(score int) int {
	span := float64(ConfidenceCeiling-ConfidenceFloor) / float64(ScoreCeiling-ScoreFloor)
	confidence := int(math.Round(ConfidenceFloor + float64(score-ScoreFloor)*span))

	if confidence < ConfidenceFloor {
		return ConfidenceFloor
	}
	if confidence > ConfidenceCeiling {
		return ConfidenceCeiling
	}
	return confidence
}
