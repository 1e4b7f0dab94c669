package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/XavierBriggs/Herald/internal/delta"
	"github.com/XavierBriggs/Herald/internal/linker"
	"github.com/XavierBriggs/Herald/internal/metrics"
	"github.com/XavierBriggs/Herald/internal/registry"
	"github.com/XavierBriggs/Herald/internal/writer"
	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	dateLayout        = "2006-01-02"
	defaultRunTimeout = 2 * time.Minute
)

// ErrNoSports is returned by Start when the registry is empty
var ErrNoSports = errors.New("no sports registered")

// FixtureStore lists and ingests fixtures
type FixtureStore interface {
	ListByDate(ctx context.Context, sportKey, date string) ([]models.Fixture, error)
	UpsertFixtures(ctx context.Context, fixtures []models.Fixture) (int64, error)
}

// LinkCache filters rows already persisted with equal or higher confidence
type LinkCache interface {
	DetectChanges(ctx context.Context, rows []models.PersistableBroadcast) ([]delta.Delta, error)
	UpdateCache(ctx context.Context, rows []models.PersistableBroadcast) error
}

// BroadcastWriter persists rows
type BroadcastWriter interface {
	WriteBroadcasts(ctx context.Context, sportKey, runID string, rows []models.PersistableBroadcast) (writer.Summary, error)
}

// Options tune the scheduler
type Options struct {
	RunTimeout   time.Duration
	SyncFixtures bool
}

// Scheduler orchestrates linking for all registered sports:
// fetch fixtures -> list candidates -> fetch TV schedule -> link -> delta -> write -> cache update
type Scheduler struct {
	adapter       contracts.ScheduleAdapter
	fixtures      FixtureStore
	linker        *linker.Linker
	cache         LinkCache
	writer        BroadcastWriter
	sportRegistry *registry.SportRegistry
	opts          Options
	logger        *logrus.Logger
	now           func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// RunSummary reports one sport/day run
type RunSummary struct {
	RunID    string
	Sport    string
	Date     string
	Fixtures int
	Stats    models.LinkStats
	Changed  int
	Write    writer.Summary
	Duration time.Duration
}

// NewScheduler creates a new linking scheduler. cache may be nil, in which case every
// linked row goes to the writer.
func NewScheduler(
	adapter contracts.ScheduleAdapter,
	fixtures FixtureStore,
	l *linker.Linker,
	cache LinkCache,
	w BroadcastWriter,
	sportRegistry *registry.SportRegistry,
	opts Options,
	logger *logrus.Logger,
) *Scheduler {
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = defaultRunTimeout
	}
	return &Scheduler{
		adapter:       adapter,
		fixtures:      fixtures,
		linker:        l,
		cache:         cache,
		writer:        w,
		sportRegistry: sportRegistry,
		opts:          opts,
		logger:        logger,
		now:           time.Now,
		stopChan:      make(chan struct{}),
	}
}

// Start begins polling for all registered sports
func (s *Scheduler) Start(ctx context.Context) error {
	sports := s.sportRegistry.GetAll()
	if len(sports) == 0 {
		return ErrNoSports
	}

	for _, sport := range sports {
		s.wg.Add(1)
		go func(sport contracts.SportModule) {
			defer s.wg.Done()
			s.pollSport(ctx, sport)
		}(sport)

		s.logger.WithFields(logrus.Fields{
			"sport":     sport.GetSportKey(),
			"interval":  sport.GetPollInterval(),
			"lookahead": sport.GetLookaheadDays(),
		}).Infof("started linking for %s", sport.GetDisplayName())
	}

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

// pollSport links the sport's lookahead window immediately and then on every tick
func (s *Scheduler) pollSport(ctx context.Context, sport contracts.SportModule) {
	s.runWindow(ctx, sport)

	ticker := time.NewTicker(sport.GetPollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runWindow(ctx, sport)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runWindow runs every day of the lookahead window. A failed day does not stop the others.
func (s *Scheduler) runWindow(ctx context.Context, sport contracts.SportModule) {
	for _, date := range LookaheadDates(s.now(), sport.GetLookaheadDays()) {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.RunOnce(ctx, sport, date); err != nil {
			metrics.SchedulerRunErrorsTotal.WithLabelValues(sport.GetSportKey()).Inc()
			s.logger.WithError(err).WithFields(logrus.Fields{
				"sport": sport.GetSportKey(),
				"date":  date,
			}).Error("link run failed")
		}
	}
}

// RunOnce executes the full pipeline for one sport and day
func (s *Scheduler) RunOnce(ctx context.Context, sport contracts.SportModule, date string) (*RunSummary, error) {
	start := time.Now()
	summary := &RunSummary{
		RunID: uuid.NewString(),
		Sport: sport.GetSportKey(),
		Date:  date,
	}
	log := s.logger.WithFields(logrus.Fields{
		"sport":  summary.Sport,
		"date":   date,
		"run_id": summary.RunID,
	})

	ctx, cancel := context.WithTimeout(ctx, s.opts.RunTimeout)
	defer cancel()

	opts := fetchOptions(sport, date)

	// Step 1: Ingest the provider's fixtures so candidates exist
	if s.opts.SyncFixtures {
		fixtures, err := s.adapter.FetchFixtures(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("fetch fixtures: %w", err)
		}
		if _, err := s.fixtures.UpsertFixtures(ctx, fixtures); err != nil {
			return nil, fmt.Errorf("upsert fixtures: %w", err)
		}
	}

	// Step 2: Candidate set for the day
	candidates, err := s.fixtures.ListByDate(ctx, summary.Sport, date)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	summary.Fixtures = len(candidates)

	// Step 3: Broadcast announcements for the day
	records, err := s.adapter.FetchTVSchedule(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch tv schedule: %w", err)
	}

	// Step 4: Match, transform, dedup
	result, err := s.linker.Link(ctx, sport, records, candidates)
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	summary.Stats = result.Stats

	// Step 5: Skip rows the cache already holds at equal or higher confidence
	rows := s.filterChanged(ctx, log, result.Rows)
	summary.Changed = len(rows)

	// Step 6: Persist
	if len(rows) > 0 {
		summary.Write, err = s.writer.WriteBroadcasts(ctx, summary.Sport, summary.RunID, rows)
		if err != nil {
			return nil, fmt.Errorf("write broadcasts: %w", err)
		}

		// Step 7: Write-through cache update
		if s.cache != nil {
			if err := s.cache.UpdateCache(ctx, rows); err != nil {
				log.WithError(err).Warn("update link cache failed")
			}
		}
	}

	summary.Duration = time.Since(start)
	metrics.SchedulerRunDuration.WithLabelValues(summary.Sport).Observe(summary.Duration.Seconds())

	log.WithFields(logrus.Fields{
		"fixtures":  summary.Fixtures,
		"records":   summary.Stats.Records,
		"matched":   summary.Stats.Matched,
		"unmatched": summary.Stats.Unmatched,
		"invalid":   summary.Stats.Invalid,
		"rows":      summary.Stats.Rows,
		"changed":   summary.Changed,
		"written":   summary.Write.Written,
		"skipped":   summary.Write.Skipped,
		"duration":  summary.Duration,
	}).Info("link run complete")

	return summary, nil
}

// Preview fetches and links one sport and day using the provider's fixtures as
// candidates. Nothing is written.
func (s *Scheduler) Preview(ctx context.Context, sport contracts.SportModule, date string) (*linker.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RunTimeout)
	defer cancel()

	opts := fetchOptions(sport, date)

	candidates, err := s.adapter.FetchFixtures(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	records, err := s.adapter.FetchTVSchedule(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch tv schedule: %w", err)
	}

	return s.linker.Link(ctx, sport, records, candidates)
}

// filterChanged drops rows the link cache says are unchanged. A cache failure
// passes every row through; the writer's upsert is idempotent.
func (s *Scheduler) filterChanged(ctx context.Context, log *logrus.Entry, rows []models.PersistableBroadcast) []models.PersistableBroadcast {
	if s.cache == nil || len(rows) == 0 {
		return rows
	}

	deltas, err := s.cache.DetectChanges(ctx, rows)
	if err != nil {
		log.WithError(err).Warn("link cache unavailable, writing all rows")
		return rows
	}
	return delta.Rows(deltas)
}

func fetchOptions(sport contracts.SportModule, date string) *models.FetchScheduleOptions {
	return &models.FetchScheduleOptions{
		SportKey: sport.GetSportKey(),
		Sport:    sport.GetProviderSport(),
		Date:     date,
	}
}

// LookaheadDates returns days UTC calendar dates starting at now's date
func LookaheadDates(now time.Time, days int) []string {
	if days <= 0 {
		days = 1
	}

	today := now.UTC()
	dates := make([]string, days)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates
}
