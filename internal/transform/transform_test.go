package transform

import (
	"testing"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBroadcastRows_ChannelCountryOverride(t *testing.T) {
	tr := NewTransformer("thesportsdb", nil)
	record := models.BroadcastRecord{
		EventID: "tv-1",
		Channel: "ESPN, Sky Sports (UK)",
		Country: "United States",
	}

	rows := tr.ToBroadcastRows("fx-1", record, 100)

	require.Len(t, rows, 2)
	assert.Equal(t, models.PersistableBroadcast{
		FixtureID:       "fx-1",
		Country:         "USA",
		Channel:         "ESPN",
		CreatedBy:       CreatedBySystem,
		Source:          "thesportsdb",
		SourceID:        "tv-1",
		ConfidenceScore: 70,
	}, rows[0])
	assert.Equal(t, "Sky Sports", rows[1].Channel)
	assert.Equal(t, "UK", rows[1].Country)
	assert.Equal(t, "tv-1", rows[1].SourceID)
}

func TestToBroadcastRows_EmptyChannel(t *testing.T) {
	tr := NewTransformer("thesportsdb", nil)

	assert.Empty(t, tr.ToBroadcastRows("fx-1", models.BroadcastRecord{Channel: " , "}, 90))
	assert.Empty(t, tr.ToBroadcastRows("fx-1", models.BroadcastRecord{}, 90))
}

func TestParseChannels(t *testing.T) {
	tr := NewTransformer("thesportsdb", nil)

	tests := []struct {
		name     string
		field    string
		fallback string
		expected []Channel
	}{
		{
			name:     "single",
			field:    "BT Sport 1",
			fallback: "England",
			expected: []Channel{{Name: "BT Sport 1", Country: "UK"}},
		},
		{
			name:     "override per channel",
			field:    "DAZN (Germany), DAZN (Spain), beIN",
			fallback: "France",
			expected: []Channel{
				{Name: "DAZN", Country: "Germany"},
				{Name: "DAZN", Country: "Spain"},
				{Name: "beIN", Country: "France"},
			},
		},
		{
			name:     "unknown country passes through",
			field:    "SuperSport (South Africa)",
			fallback: "",
			expected: []Channel{{Name: "SuperSport", Country: "South Africa"}},
		},
		{
			name:     "empty parentheses ignored",
			field:    "Channel 5 ()",
			fallback: "UK",
			expected: []Channel{{Name: "Channel 5 ()", Country: "UK"}},
		},
		{
			name:     "blank tokens dropped",
			field:    "ESPN,, ,ESPN2",
			fallback: "USA",
			expected: []Channel{{Name: "ESPN", Country: "USA"}, {Name: "ESPN2", Country: "USA"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.ParseChannels(tt.field, tt.fallback))
		})
	}
}

func TestConfidenceFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{score: 100, expected: 70},
		{score: 85, expected: 55},
		{score: 70, expected: 40},
		{score: 50, expected: 40},
		{score: 120, expected: 70},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConfidenceFromScore(tt.score), "score %d", tt.score)
	}
}

func TestCountryTable_Normalize(t *testing.T) {
	countries := DefaultCountryTable()

	assert.Equal(t, "UK", countries.Normalize("uk"))
	assert.Equal(t, "UK", countries.Normalize(" United Kingdom "))
	assert.Equal(t, "USA", countries.Normalize("US"))
	assert.Equal(t, "Brazil", countries.Normalize("Brazil"))
	assert.Equal(t, "", countries.Normalize("  "))
}
