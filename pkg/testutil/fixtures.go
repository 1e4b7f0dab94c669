package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
)

// NewTestFixture creates a test fixture
func NewTestFixture(id, home, away, date, kickoff string) models.Fixture {
	return models.Fixture{
		ID:     id,
		Sport:  "soccer",
		League: "Premier League",
		Home:   home,
		Away:   away,
		Date:   date,
		Time:   kickoff,
		Status: "upcoming",
	}
}

// NewTestBroadcast creates a test broadcast record
func NewTestBroadcast(eventID, home, away, date, kickoff, channel string) models.BroadcastRecord {
	return models.BroadcastRecord{
		EventID:   eventID,
		EventName: home + " vs " + away,
		Sport:     "Soccer",
		HomeTeam:  home,
		AwayTeam:  away,
		Date:      date,
		Time:      kickoff,
		Channel:   channel,
		Country:   "USA",
	}
}

// MockScheduleAdapter is a test adapter that returns predetermined records
type MockScheduleAdapter struct {
	FetchTVScheduleFunc func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error)
	FetchFixturesFunc   func(opts *models.FetchScheduleOptions) ([]models.Fixture, error)
	Source              string

	mu    sync.Mutex
	Calls []models.FetchScheduleOptions
}

var _ contracts.ScheduleAdapter = (*MockScheduleAdapter)(nil)

func (m *MockScheduleAdapter) FetchTVSchedule(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
	m.record(opts)
	if m.FetchTVScheduleFunc != nil {
		return m.FetchTVScheduleFunc(opts)
	}
	return []models.BroadcastRecord{}, nil
}

func (m *MockScheduleAdapter) FetchFixtures(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.Fixture, error) {
	m.record(opts)
	if m.FetchFixturesFunc != nil {
		return m.FetchFixturesFunc(opts)
	}
	return []models.Fixture{}, nil
}

func (m *MockScheduleAdapter) SourceName() string {
	if m.Source == "" {
		return "mock"
	}
	return m.Source
}

func (m *MockScheduleAdapter) record(opts *models.FetchScheduleOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, *opts)
}

// MockSportModule is a configurable SportModule for tests
type MockSportModule struct {
	Key           string
	Profile       models.SportProfile
	LookaheadDays int
	ValidateFunc  func(record models.BroadcastRecord) error
}

var _ contracts.SportModule = (*MockSportModule)(nil)

func (m *MockSportModule) GetSportKey() string {
	if m.Key == "" {
		return "soccer"
	}
	return m.Key
}

func (m *MockSportModule) GetDisplayName() string          { return "Mock " + m.GetSportKey() }
func (m *MockSportModule) GetProviderSport() string        { return "Soccer" }
func (m *MockSportModule) GetProfile() models.SportProfile { return m.Profile }
func (m *MockSportModule) GetPollInterval() time.Duration  { return time.Hour }
func (m *MockSportModule) GetMatchDuration() time.Duration { return 2 * time.Hour }

func (m *MockSportModule) GetLookaheadDays() int {
	if m.LookaheadDays == 0 {
		return 1
	}
	return m.LookaheadDays
}

func (m *MockSportModule) ValidateBroadcast(record models.BroadcastRecord) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(record)
	}
	return nil
}
