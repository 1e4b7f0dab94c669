// Package store reads and writes the fixture directory in Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/lib/pq"
)

// Fixture statuses
const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinished = "finished"
)

// FixtureStore is the Postgres-backed fixture directory
type FixtureStore struct {
	db *sql.DB
}

// NewFixtureStore creates a fixture store
func NewFixtureStore(db *sql.DB) *FixtureStore {
	return &FixtureStore{db: db}
}

// ListByDate returns the sport's fixtures on one calendar day, the candidate set for linking
func (s *FixtureStore) ListByDate(ctx context.Context, sportKey, date string) ([]models.Fixture, error) {
	query := `
		SELECT id, sport_key, league, home_team, away_team,
		       to_char(event_date, 'YYYY-MM-DD'), event_time, status
		FROM fixtures
		WHERE sport_key = $1 AND event_date = $2::date
		ORDER BY event_time, id
	`

	rows, err := s.db.QueryContext(ctx, query, sportKey, date)
	if err != nil {
		return nil, fmt.Errorf("query fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []models.Fixture
	for rows.Next() {
		var f models.Fixture
		if err := rows.Scan(&f.ID, &f.Sport, &f.League, &f.Home, &f.Away, &f.Date, &f.Time, &f.Status); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		fixtures = append(fixtures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixtures: %w", err)
	}

	return fixtures, nil
}

// UpsertFixtures inserts or updates fixtures reported by the provider.
// Status is only set on insert; the status updater owns it afterwards.
func (s *FixtureStore) UpsertFixtures(ctx context.Context, fixtures []models.Fixture) (int64, error) {
	fixtures = validFixtures(fixtures)
	if len(fixtures) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO fixtures (
			id, sport_key, league, home_team, away_team, event_date, event_time, status
		)
		SELECT UNNEST($1::text[]), UNNEST($2::text[]), UNNEST($3::text[]), UNNEST($4::text[]),
		       UNNEST($5::text[]), UNNEST($6::date[]), UNNEST($7::text[]), UNNEST($8::text[])
		ON CONFLICT (id)
		DO UPDATE SET
			league = EXCLUDED.league,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			event_date = EXCLUDED.event_date,
			event_time = EXCLUDED.event_time,
			updated_at = NOW()
	`

	ids := make([]string, len(fixtures))
	sportKeys := make([]string, len(fixtures))
	leagues := make([]string, len(fixtures))
	homeTeams := make([]string, len(fixtures))
	awayTeams := make([]string, len(fixtures))
	dates := make([]string, len(fixtures))
	times := make([]string, len(fixtures))
	statuses := make([]string, len(fixtures))

	for i, f := range fixtures {
		ids[i] = f.ID
		sportKeys[i] = f.Sport
		leagues[i] = f.League
		homeTeams[i] = f.Home
		awayTeams[i] = f.Away
		dates[i] = f.Date
		times[i] = f.Time
		statuses[i] = f.Status
		if statuses[i] == "" {
			statuses[i] = StatusUpcoming
		}
	}

	result, err := s.db.ExecContext(ctx, query,
		pq.Array(ids), pq.Array(sportKeys), pq.Array(leagues), pq.Array(homeTeams),
		pq.Array(awayTeams), pq.Array(dates), pq.Array(times), pq.Array(statuses),
	)
	if err != nil {
		return 0, fmt.Errorf("upsert fixtures: %w", err)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

// validFixtures drops fixtures that cannot be stored and repeated ids, which
// would make a single ON CONFLICT statement touch the same row twice
func validFixtures(fixtures []models.Fixture) []models.Fixture {
	seen := make(map[string]bool, len(fixtures))
	valid := make([]models.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.ID == "" || f.Date == "" || f.Home == "" || f.Away == "" {
			continue
		}
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		valid = append(valid, f)
	}
	return valid
}
