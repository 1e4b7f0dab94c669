package delta

import (
	"testing"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(confidence int) models.PersistableBroadcast {
	return models.PersistableBroadcast{
		FixtureID:       "f1",
		Channel:         "Sky Sports",
		Country:         "UK",
		Source:          "thesportsdb",
		ConfidenceScore: confidence,
	}
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "broadcast:link:thesportsdb:f1:sky sports:uk", BuildKey(row(60)))
}

func TestCompareRow(t *testing.T) {
	tests := []struct {
		name   string
		cached interface{}
		want   ChangeType
		old    *int
	}{
		{name: "missing", cached: nil, want: ChangeTypeNew},
		{name: "corrupt", cached: "not-a-number", want: ChangeTypeNew},
		{name: "unexpected type", cached: 12, want: ChangeTypeNew},
		{name: "lower cached", cached: "50", want: ChangeTypeConfidence, old: intPtr(50)},
		{name: "equal cached", cached: "60", want: ChangeTypeNone},
		{name: "higher cached", cached: "70", want: ChangeTypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, old := CompareRow(row(60), tt.cached)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.old, old)
		})
	}
}

func TestRows(t *testing.T) {
	deltas := []Delta{{Row: row(50)}, {Row: row(70)}}

	rows := Rows(deltas)

	require.Len(t, rows, 2)
	assert.Equal(t, 50, rows[0].ConfidenceScore)
	assert.Equal(t, 70, rows[1].ConfidenceScore)
}

func intPtr(v int) *int { return &v }
