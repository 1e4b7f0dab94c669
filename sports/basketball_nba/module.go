package basketball_nba

import (
	"time"

	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
)

// Module implements the SportModule interface for NBA Basketball
type Module struct {
	config  *Config
	profile models.SportProfile
}

var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new NBA sport module
func NewModule() *Module {
	return &Module{
		config: DefaultConfig(),
		profile: models.SportProfile{
			TeamAliases:   TeamAliases(),
			LeagueAliases: LeagueAliases(),
		},
	}
}

// GetSportKey returns the sport identifier
func (m *Module) GetSportKey() string {
	return m.config.SportKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// GetProviderSport returns the provider's sport filter
func (m *Module) GetProviderSport() string {
	return m.config.ProviderSport
}

// GetProfile returns the NBA alias tables
func (m *Module) GetProfile() models.SportProfile {
	return m.profile
}

// GetPollInterval returns how often to re-link broadcasts
func (m *Module) GetPollInterval() time.Duration {
	return m.config.Linking.PollInterval
}

// GetLookaheadDays returns the linking window in days
func (m *Module) GetLookaheadDays() int {
	return m.config.Linking.LookaheadDays
}

// GetMatchDuration returns how long a game stays live
func (m *Module) GetMatchDuration() time.Duration {
	return m.config.Linking.MatchDuration
}

// ValidateBroadcast performs NBA-specific validation
func (m *Module) ValidateBroadcast(record models.BroadcastRecord) error {
	return ValidateBroadcast(record)
}
