package soccer

import (
	"fmt"
	"strings"
	"time"

	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
)

// Module implements the SportModule interface for soccer
type Module struct {
	config  *Config
	profile models.SportProfile
}

var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new soccer sport module
func NewModule() *Module {
	return &Module{
		config: DefaultConfig(),
		profile: models.SportProfile{
			TeamAliases:   TeamAliases(),
			LeagueAliases: LeagueAliases(),
		},
	}
}

func (m *Module) GetSportKey() string             { return m.config.SportKey }
func (m *Module) GetDisplayName() string          { return m.config.DisplayName }
func (m *Module) GetProviderSport() string        { return m.config.ProviderSport }
func (m *Module) GetProfile() models.SportProfile { return m.profile }
func (m *Module) GetPollInterval() time.Duration  { return m.config.PollInterval }
func (m *Module) GetLookaheadDays() int           { return m.config.LookaheadDays }
func (m *Module) GetMatchDuration() time.Duration { return m.config.MatchDuration }

// ValidateBroadcast rejects records that cannot name a single fixture
func (m *Module) ValidateBroadcast(record models.BroadcastRecord) error {
	if record.HomeTeam == "" || record.AwayTeam == "" {
		return fmt.Errorf("broadcast %s is missing a team", record.EventID)
	}
	if strings.EqualFold(strings.TrimSpace(record.HomeTeam), strings.TrimSpace(record.AwayTeam)) {
		return fmt.Errorf("home and away teams cannot be the same")
	}
	if record.Date == "" {
		return fmt.Errorf("broadcast %s has no date", record.EventID)
	}
	if strings.TrimSpace(record.Channel) == "" {
		return fmt.Errorf("broadcast %s has no channel", record.EventID)
	}
	return nil
}
