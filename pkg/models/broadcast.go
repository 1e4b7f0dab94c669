package models

// Fixture is a scheduled sporting event already known to the directory.
// Date is a timezone-naive calendar day (YYYY-MM-DD), Time is HH:MM.
type Fixture struct {
	ID     string
	Sport  string
	League string
	Home   string
	Away   string
	Date   string
	Time   string
	Status string // upcoming, live, finished
}

// BroadcastRecord is a raw TV-broadcast announcement from the schedule provider
type BroadcastRecord struct {
	EventID   string
	EventName string
	Sport     string
	League    string
	HomeTeam  string
	AwayTeam  string
	Date      string // YYYY-MM-DD, may carry a trailing "T..." component
	Time      string // HH:MM or HH:MM:SS
	Channel   string // possibly comma-joined, items may end with "(Country)"
	Country   string
}

// SubScores holds the per-field scores of a comparison, each 0-100
type SubScores struct {
	Home   int
	Away   int
	Date   int
	Time   int
	League int
}

// MatchCandidate pairs one broadcast record with one fixture
type MatchCandidate struct {
	Fixture   Fixture
	Total     int // 0-100
	SubScores SubScores
}

// PersistableBroadcast is one (fixture, channel, country) row handed to storage
type PersistableBroadcast struct {
	FixtureID       string `json:"fixture_id"`
	Country         string `json:"country"`
	Channel         string `json:"channel"`
	CreatedBy       string `json:"created_by"`
	Source          string `json:"source"`
	SourceID        string `json:"source_id"`
	ConfidenceScore int    `json:"confidence_score"` // 40-70
}

// Alias is one substring substitution applied during name normalization
type Alias struct {
	Pattern     string
	Replacement string
}

// SportProfile carries the per-sport alias tables used by the matcher.
// TeamAliases are applied in slice order; LeagueAliases is an exact-key lookup.
type SportProfile struct {
	TeamAliases   []Alias
	LeagueAliases map[string]string
}

// FetchScheduleOptions contains parameters for fetching a day's schedule from the provider
type FetchScheduleOptions struct {
	SportKey string // internal sport key stamped on fixtures, e.g. "soccer"
	Sport    string // provider sport name, e.g. "Soccer"
	Date     string // YYYY-MM-DD
}

// LinkStats summarizes one batch evaluation
type LinkStats struct {
	Records   int `json:"records"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Invalid   int `json:"invalid"`
	Rows      int `json:"rows"`
}
