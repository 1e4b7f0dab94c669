// Package linker evaluates a day's broadcast records against that day's fixtures.
package linker

import (
	"context"

	"github.com/XavierBriggs/Herald/internal/matcher"
	"github.com/XavierBriggs/Herald/internal/metrics"
	"github.com/XavierBriggs/Herald/internal/transform"
	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

// Linker runs the matcher and transformer over a batch of records
type Linker struct {
	transformer *transform.Transformer
	workers     int
	logger      *logrus.Logger
}

// Result is the outcome of one batch
type Result struct {
	Rows    []models.PersistableBroadcast
	Matches []Match
	Stats   models.LinkStats
}

// Match records which fixture a broadcast record was linked to
type Match struct {
	Record    models.BroadcastRecord
	Candidate models.MatchCandidate
}

// NewLinker creates a linker evaluating up to workers records concurrently
func NewLinker(transformer *transform.Transformer, workers int, logger *logrus.Logger) *Linker {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Linker{
		transformer: transformer,
		workers:     workers,
		logger:      logger,
	}
}

// outcome is the per-record slot filled by a worker
type outcome struct {
	invalid bool
	matched bool
	match   Match
	rows    []models.PersistableBroadcast
}

// Link matches every record against the same candidate set and returns deduplicated rows.
// Records are independent, so they are scored concurrently; output order follows input order.
func (l *Linker) Link(ctx context.Context, sport contracts.SportModule, records []models.BroadcastRecord, candidates []models.Fixture) (*Result, error) {
	profile := sport.GetProfile()
	outcomes := make([]outcome, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = l.linkOne(sport, profile, records[i], candidates)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Stats: models.LinkStats{Records: len(records)}}
	var rows []models.PersistableBroadcast

	for _, o := range outcomes {
		switch {
		case o.invalid:
			result.Stats.Invalid++
		case o.matched:
			result.Stats.Matched++
			result.Matches = append(result.Matches, o.match)
			rows = append(rows, o.rows...)
		default:
			result.Stats.Unmatched++
		}
	}

	result.Rows = transform.Dedup(rows)
	result.Stats.Rows = len(result.Rows)

	sportKey := sport.GetSportKey()
	metrics.LinkerRecordsTotal.WithLabelValues(sportKey, metrics.OutcomeMatched).Add(float64(result.Stats.Matched))
	metrics.LinkerRecordsTotal.WithLabelValues(sportKey, metrics.OutcomeUnmatched).Add(float64(result.Stats.Unmatched))
	metrics.LinkerRecordsTotal.WithLabelValues(sportKey, metrics.OutcomeInvalid).Add(float64(result.Stats.Invalid))

	return result, nil
}

func (l *Linker) linkOne(sport contracts.SportModule, profile models.SportProfile, record models.BroadcastRecord, candidates []models.Fixture) outcome {
	log := l.logger.WithFields(logrus.Fields{
		"sport":    sport.GetSportKey(),
		"event_id": record.EventID,
		"event":    record.EventName,
	})

	if err := sport.ValidateBroadcast(record); err != nil {
		log.WithError(err).Debug("skipping invalid broadcast record")
		return outcome{invalid: true}
	}

	best, ok := matcher.FindBestMatch(record, candidates, profile)
	if !ok {
		log.Debug("no fixture matched broadcast")
		return outcome{}
	}

	metrics.LinkerMatchScore.WithLabelValues(sport.GetSportKey()).Observe(float64(best.Total))
	log.WithFields(logrus.Fields{
		"fixture_id":   best.Fixture.ID,
		"total":        best.Total,
		"home_score":   best.SubScores.Home,
		"away_score":   best.SubScores.Away,
		"date_score":   best.SubScores.Date,
		"time_score":   best.SubScores.Time,
		"league_score": best.SubScores.League,
	}).Debug("broadcast matched fixture")

	return outcome{
		matched: true,
		match:   Match{Record: record, Candidate: best},
		rows:    l.transformer.ToBroadcastRows(best.Fixture.ID, record, best.Total),
	}
}
