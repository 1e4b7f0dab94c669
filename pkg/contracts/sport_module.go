package contracts

import (
	"time"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// SportModule defines the interface for sport-specific linking configuration
// This keeps the matcher sport-agnostic: every alias table comes from here
type SportModule interface {
	// GetSportKey returns the unique identifier for this sport (e.g., "soccer")
	GetSportKey() string

	// GetDisplayName returns the human-readable name (e.g., "Soccer")
	GetDisplayName() string

	// GetProviderSport returns the sport name the schedule provider expects (e.g., "Soccer")
	GetProviderSport() string

	// GetProfile returns the team and league alias tables for matching
	GetProfile() models.SportProfile

	// GetPollInterval returns how often to re-link the lookahead window
	GetPollInterval() time.Duration

	// GetLookaheadDays returns how many days, today included, to link on each poll
	GetLookaheadDays() int

	// GetMatchDuration returns how long after kickoff a fixture is considered live
	GetMatchDuration() time.Duration

	// ValidateBroadcast performs sport-specific validation on a raw broadcast record
	ValidateBroadcast(record models.BroadcastRecord) error
}
