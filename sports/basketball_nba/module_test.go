package basketball_nba

import (
	"testing"
	"time"

	"github.com/XavierBriggs/Herald/internal/matcher"
	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "basketball_nba", config.SportKey)
	assert.Equal(t, "Basketball", config.ProviderSport)
	assert.Equal(t, 3*time.Hour, config.Linking.MatchDuration)
	assert.Equal(t, 3, config.Linking.LookaheadDays)
}

func TestModule_Profile(t *testing.T) {
	m := NewModule()
	profile := m.GetProfile()

	assert.Equal(t, 1.0, matcher.Similarity("LA Lakers", "Los Angeles Lakers", profile.TeamAliases))
	assert.Equal(t, 1.0, matcher.Similarity("Sixers", "Philadelphia 76ers", profile.TeamAliases))
	assert.Equal(t, 1.0, matcher.CompareLeagues("National Basketball Association", "NBA", profile.LeagueAliases))
}

func TestValidateBroadcast(t *testing.T) {
	valid := models.BroadcastRecord{HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat", Date: "2024-05-01", Channel: "TNT"}

	tests := []struct {
		name    string
		mutate  func(r *models.BroadcastRecord)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *models.BroadcastRecord) {}},
		{name: "no home", mutate: func(r *models.BroadcastRecord) { r.HomeTeam = "" }, wantErr: true},
		{name: "no away", mutate: func(r *models.BroadcastRecord) { r.AwayTeam = "" }, wantErr: true},
		{name: "same team", mutate: func(r *models.BroadcastRecord) { r.AwayTeam = "boston celtics" }, wantErr: true},
		{name: "no date", mutate: func(r *models.BroadcastRecord) { r.Date = "" }, wantErr: true},
		{name: "no channel", mutate: func(r *models.BroadcastRecord) { r.Channel = "" }, wantErr: true},
		{name: "all-star", mutate: func(r *models.BroadcastRecord) { r.HomeTeam = "Team LeBron All-Star" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)
			err := ValidateBroadcast(record)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
