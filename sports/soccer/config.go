package soccer

import "time"

// Config contains soccer linking configuration
type Config struct {
	SportKey      string
	DisplayName   string
	ProviderSport string

	PollInterval  time.Duration
	LookaheadDays int

	// 90 minutes, half time, stoppage and a possible extra time
	MatchDuration time.Duration
}

// DefaultConfig returns the soccer linking configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:      "soccer",
		DisplayName:   "Soccer",
		ProviderSport: "Soccer",
		PollInterval:  1 * time.Hour,
		LookaheadDays: 7,
		MatchDuration: 150 * time.Minute,
	}
}
