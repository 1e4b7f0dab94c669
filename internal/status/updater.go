// Package status moves fixtures through upcoming, live and finished as kickoff passes.
package status

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/XavierBriggs/Herald/internal/metrics"
	"github.com/XavierBriggs/Herald/internal/store"
	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/sirupsen/logrus"
)

// kickoffExpr yields the UTC kickoff timestamp, or NULL when event_time is not a clock time
const kickoffExpr = `CASE WHEN event_time ~ '^[0-9]{1,2}:[0-9]{2}(:[0-9]{2})?$'
		THEN event_date + event_time::time END`

var (
	liveQuery = `
		UPDATE fixtures
		SET status = '` + store.StatusLive + `', updated_at = NOW()
		WHERE sport_key = $1
		  AND status = '` + store.StatusUpcoming + `'
		  AND ` + kickoffExpr + ` <= (NOW() AT TIME ZONE 'UTC')
		  AND ` + kickoffExpr + ` > (NOW() AT TIME ZONE 'UTC') - make_interval(secs => $2)
	`

	finishedQuery = `
		UPDATE fixtures
		SET status = '` + store.StatusFinished + `', updated_at = NOW()
		WHERE sport_key = $1
		  AND status IN ('` + store.StatusUpcoming + `', '` + store.StatusLive + `')
		  AND (
			` + kickoffExpr + ` <= (NOW() AT TIME ZONE 'UTC') - make_interval(secs => $2)
			OR (` + kickoffExpr + ` IS NULL AND event_date < (NOW() AT TIME ZONE 'UTC')::date)
		  )
	`
)

// Updater updates fixture status based on kickoff and each sport's match duration
type Updater struct {
	db           *sql.DB
	sports       []contracts.SportModule
	pollInterval time.Duration
	logger       *logrus.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewUpdater creates a new fixture status updater
func NewUpdater(db *sql.DB, sports []contracts.SportModule, pollInterval time.Duration, logger *logrus.Logger) *Updater {
	return &Updater{
		db:           db,
		sports:       sports,
		pollInterval: pollInterval,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start updates statuses immediately and then on every tick until stopped
func (u *Updater) Start(ctx context.Context) {
	ticker := time.NewTicker(u.pollInterval)
	defer ticker.Stop()

	u.logger.WithField("interval", u.pollInterval).Info("fixture status updater started")

	if err := u.UpdateStatuses(ctx); err != nil {
		u.logger.WithError(err).Error("initial status update failed")
	}

	for {
		select {
		case <-ticker.C:
			if err := u.UpdateStatuses(ctx); err != nil {
				u.logger.WithError(err).Error("status update failed")
			}
		case <-u.stopChan:
			u.logger.Info("fixture status updater stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop gracefully stops the updater
func (u *Updater) Stop() {
	u.stopOnce.Do(func() { close(u.stopChan) })
}

// UpdateStatuses runs one pass for every sport
func (u *Updater) UpdateStatuses(ctx context.Context) error {
	for _, sport := range u.sports {
		if err := u.updateSport(ctx, sport); err != nil {
			return fmt.Errorf("%s: %w", sport.GetSportKey(), err)
		}
	}
	return nil
}

func (u *Updater) updateSport(ctx context.Context, sport contracts.SportModule) error {
	sportKey := sport.GetSportKey()
	window := sport.GetMatchDuration().Seconds()

	finishedResult, err := u.db.ExecContext(ctx, finishedQuery, sportKey, window)
	if err != nil {
		return fmt.Errorf("update to finished: %w", err)
	}
	finishedCount, _ := finishedResult.RowsAffected()

	liveResult, err := u.db.ExecContext(ctx, liveQuery, sportKey, window)
	if err != nil {
		return fmt.Errorf("update to live: %w", err)
	}
	liveCount, _ := liveResult.RowsAffected()

	metrics.FixturesStatusUpdatesTotal.WithLabelValues(store.StatusLive).Add(float64(liveCount))
	metrics.FixturesStatusUpdatesTotal.WithLabelValues(store.StatusFinished).Add(float64(finishedCount))

	if liveCount > 0 || finishedCount > 0 {
		u.logger.WithFields(logrus.Fields{
			"sport":    sportKey,
			"live":     liveCount,
			"finished": finishedCount,
		}).Info("fixture statuses updated")
	}
	return nil
}
