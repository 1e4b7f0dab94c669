package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/XavierBriggs/Herald/internal/delta"
	"github.com/XavierBriggs/Herald/internal/linker"
	"github.com/XavierBriggs/Herald/internal/registry"
	"github.com/XavierBriggs/Herald/internal/transform"
	"github.com/XavierBriggs/Herald/internal/writer"
	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/XavierBriggs/Herald/pkg/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	fixtures []models.Fixture
	upserted []models.Fixture
	listErr  error
}

func (f *fakeStore) ListByDate(ctx context.Context, sportKey, date string) ([]models.Fixture, error) {
	return f.fixtures, f.listErr
}

func (f *fakeStore) UpsertFixtures(ctx context.Context, fixtures []models.Fixture) (int64, error) {
	f.upserted = append(f.upserted, fixtures...)
	return int64(len(fixtures)), nil
}

type fakeCache struct {
	known     map[string]int
	detectErr error
	updated   []models.PersistableBroadcast
}

func (f *fakeCache) DetectChanges(ctx context.Context, rows []models.PersistableBroadcast) ([]delta.Delta, error) {
	if f.detectErr != nil {
		return nil, f.detectErr
	}
	var deltas []delta.Delta
	for _, row := range rows {
		cached, ok := f.known[delta.BuildKey(row)]
		if ok && cached >= row.ConfidenceScore {
			continue
		}
		deltas = append(deltas, delta.Delta{Row: row, ChangeType: delta.ChangeTypeNew})
	}
	return deltas, nil
}

func (f *fakeCache) UpdateCache(ctx context.Context, rows []models.PersistableBroadcast) error {
	f.updated = append(f.updated, rows...)
	return nil
}

type fakeWriter struct {
	runID string
	rows  []models.PersistableBroadcast
	err   error
}

func (f *fakeWriter) WriteBroadcasts(ctx context.Context, sportKey, runID string, rows []models.PersistableBroadcast) (writer.Summary, error) {
	if f.err != nil {
		return writer.Summary{}, f.err
	}
	f.runID = runID
	f.rows = append(f.rows, rows...)
	return writer.Summary{Chunks: 1, Written: len(rows)}, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestScheduler(adapter *testutil.MockScheduleAdapter, store *fakeStore, cache LinkCache, w *fakeWriter, opts Options) *Scheduler {
	l := linker.NewLinker(transform.NewTransformer("mock", nil), 2, quietLogger())
	return NewScheduler(adapter, store, l, cache, w, registry.NewSportRegistry(), opts, quietLogger())
}

func arsenalChelsea() (models.Fixture, models.BroadcastRecord) {
	fixture := testutil.NewTestFixture("f1", "Arsenal", "Chelsea", "2024-03-10", "15:00")
	record := testutil.NewTestBroadcast("e1", "Arsenal", "Chelsea", "2024-03-10", "15:00", "ESPN, Sky Sports (UK)")
	record.League = "Premier League"
	return fixture, record
}

func TestRunOnce_SyncLinkWrite(t *testing.T) {
	fixture, record := arsenalChelsea()
	adapter := &testutil.MockScheduleAdapter{
		FetchFixturesFunc: func(opts *models.FetchScheduleOptions) ([]models.Fixture, error) {
			return []models.Fixture{fixture}, nil
		},
		FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
			return []models.BroadcastRecord{record}, nil
		},
	}
	store := &fakeStore{fixtures: []models.Fixture{fixture}}
	cache := &fakeCache{known: map[string]int{}}
	w := &fakeWriter{}

	s := newTestScheduler(adapter, store, cache, w, Options{SyncFixtures: true})
	summary, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
	require.NoError(t, err)

	assert.Len(t, store.upserted, 1)
	assert.Equal(t, 1, summary.Fixtures)
	assert.Equal(t, 1, summary.Stats.Matched)
	assert.Equal(t, 2, summary.Changed)
	assert.Equal(t, 2, summary.Write.Written)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, summary.RunID, w.runID)
	assert.Len(t, w.rows, 2)
	assert.Len(t, cache.updated, 2)

	require.NotEmpty(t, adapter.Calls)
	assert.Equal(t, models.FetchScheduleOptions{SportKey: "soccer", Sport: "Soccer", Date: "2024-03-10"}, adapter.Calls[0])
}

func TestRunOnce_SkipsCachedRows(t *testing.T) {
	fixture, record := arsenalChelsea()
	adapter := &testutil.MockScheduleAdapter{
		FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
			return []models.BroadcastRecord{record}, nil
		},
	}
	cache := &fakeCache{known: map[string]int{
		"broadcast:link:mock:f1:espn:usa":      70,
		"broadcast:link:mock:f1:sky sports:uk": 70,
	}}
	w := &fakeWriter{}

	s := newTestScheduler(adapter, &fakeStore{fixtures: []models.Fixture{fixture}}, cache, w, Options{})
	summary, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Stats.Rows)
	assert.Equal(t, 0, summary.Changed)
	assert.Empty(t, w.rows)
	assert.Empty(t, cache.updated)
}

func TestRunOnce_CacheFailureWritesAllRows(t *testing.T) {
	fixture, record := arsenalChelsea()
	adapter := &testutil.MockScheduleAdapter{
		FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
			return []models.BroadcastRecord{record}, nil
		},
	}
	cache := &fakeCache{detectErr: errors.New("connection refused")}
	w := &fakeWriter{}

	s := newTestScheduler(adapter, &fakeStore{fixtures: []models.Fixture{fixture}}, cache, w, Options{})
	summary, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Changed)
	assert.Len(t, w.rows, 2)
}

func TestRunOnce_Errors(t *testing.T) {
	fixture, record := arsenalChelsea()

	t.Run("list fixtures", func(t *testing.T) {
		s := newTestScheduler(&testutil.MockScheduleAdapter{}, &fakeStore{listErr: errors.New("db down")}, nil, &fakeWriter{}, Options{})
		_, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
		assert.ErrorContains(t, err, "list fixtures")
	})

	t.Run("fetch tv schedule", func(t *testing.T) {
		adapter := &testutil.MockScheduleAdapter{
			FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
				return nil, errors.New("HTTP 500")
			},
		}
		s := newTestScheduler(adapter, &fakeStore{}, nil, &fakeWriter{}, Options{})
		_, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
		assert.ErrorContains(t, err, "fetch tv schedule")
	})

	t.Run("write", func(t *testing.T) {
		adapter := &testutil.MockScheduleAdapter{
			FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
				return []models.BroadcastRecord{record}, nil
			},
		}
		w := &fakeWriter{err: errors.New("tx aborted")}
		s := newTestScheduler(adapter, &fakeStore{fixtures: []models.Fixture{fixture}}, nil, w, Options{})
		_, err := s.RunOnce(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
		assert.ErrorContains(t, err, "write broadcasts")
	})
}

func TestPreview_UsesProviderFixtures(t *testing.T) {
	fixture, record := arsenalChelsea()
	adapter := &testutil.MockScheduleAdapter{
		FetchFixturesFunc: func(opts *models.FetchScheduleOptions) ([]models.Fixture, error) {
			return []models.Fixture{fixture}, nil
		},
		FetchTVScheduleFunc: func(opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
			return []models.BroadcastRecord{record}, nil
		},
	}
	w := &fakeWriter{}

	s := newTestScheduler(adapter, nil, nil, w, Options{})
	result, err := s.Preview(context.Background(), &testutil.MockSportModule{}, "2024-03-10")
	require.NoError(t, err)

	assert.Len(t, result.Rows, 2)
	assert.Empty(t, w.rows)
}

func TestStart_NoSports(t *testing.T) {
	s := newTestScheduler(&testutil.MockScheduleAdapter{}, &fakeStore{}, nil, &fakeWriter{}, Options{})
	assert.ErrorIs(t, s.Start(context.Background()), ErrNoSports)
}

func TestLookaheadDates(t *testing.T) {
	now := time.Date(2024, 2, 28, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, LookaheadDates(now, 3))
	assert.Equal(t, []string{"2024-02-28"}, LookaheadDates(now, 0))
}

func TestLookaheadDates_ConvertsToUTC(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, east)

	assert.Equal(t, []string{"2024-03-09"}, LookaheadDates(now, 1))
}
