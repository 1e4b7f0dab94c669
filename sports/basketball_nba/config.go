package basketball_nba

import (
	"time"
)

// Config contains NBA-specific linking configuration
type Config struct {
	// Sport identification
	SportKey    string
	DisplayName string

	// ProviderSport is the sport name the schedule provider filters on
	ProviderSport string

	// Linking configuration
	Linking LinkingConfig
}

// LinkingConfig defines how often and how far ahead broadcasts are linked
type LinkingConfig struct {
	// How often the lookahead window is re-linked
	PollInterval time.Duration

	// Days to link, today included
	LookaheadDays int

	// How long a game is considered live after tipoff
	MatchDuration time.Duration
}

// DefaultConfig returns the NBA linking configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:      "basketball_nba",
		DisplayName:   "NBA Basketball",
		ProviderSport: "Basketball",

		Linking: LinkingConfig{
			PollInterval:  2 * time.Hour,
			LookaheadDays: 3,
			// NBA games typically last 2-2.5 hours
			MatchDuration: 3 * time.Hour,
		},
	}
}
