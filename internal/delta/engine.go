package delta

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/redis/go-redis/v9"
)

// Engine filters linked broadcast rows against the Redis link cache so unchanged
// rows are not rewritten on every poll
type Engine struct {
	redis *redis.Client
	ttl   time.Duration
}

// ChangeType indicates the type of change detected
type ChangeType string

const (
	ChangeTypeNew        ChangeType = "new"
	ChangeTypeConfidence ChangeType = "confidence"
	ChangeTypeNone       ChangeType = "none"
)

// Delta represents a row that must be written
type Delta struct {
	Row           models.PersistableBroadcast
	ChangeType    ChangeType
	OldConfidence *int
}

// NewEngine creates a new delta detection engine
func NewEngine(redisClient *redis.Client, cacheTTL time.Duration) *Engine {
	return &Engine{
		redis: redisClient,
		ttl:   cacheTTL,
	}
}

// DetectChanges returns the rows that are new or carry a higher confidence than cached
func (e *Engine) DetectChanges(ctx context.Context, rows []models.PersistableBroadcast) ([]Delta, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = BuildKey(row)
	}

	cachedValues, err := e.redis.MGet(ctx, keys...).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	deltas := make([]Delta, 0, len(rows))
	for i, row := range rows {
		var cached interface{}
		if i < len(cachedValues) {
			cached = cachedValues[i]
		}

		changeType, old := CompareRow(row, cached)
		if changeType != ChangeTypeNone {
			deltas = append(deltas, Delta{Row: row, ChangeType: changeType, OldConfidence: old})
		}
	}

	return deltas, nil
}

// UpdateCache writes the confidence of persisted rows (write-through).
// Call it only after the rows were committed.
func (e *Engine) UpdateCache(ctx context.Context, rows []models.PersistableBroadcast) error {
	if len(rows) == 0 {
		return nil
	}

	pipe := e.redis.Pipeline()
	for _, row := range rows {
		pipe.Set(ctx, BuildKey(row), strconv.Itoa(row.ConfidenceScore), e.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline exec: %w", err)
	}
	return nil
}

// Rows extracts the rows from a set of deltas
func Rows(deltas []Delta) []models.PersistableBroadcast {
	rows := make([]models.PersistableBroadcast, len(deltas))
	for i, d := range deltas {
		rows[i] = d.Row
	}
	return rows
}

// BuildKey creates the Redis key for a row.
// Format: broadcast:link:{source}:{fixture_id}:{channel}:{country}
func BuildKey(row models.PersistableBroadcast) string {
	return fmt.Sprintf("broadcast:link:%s:%s:%s:%s",
		row.Source,
		row.FixtureID,
		strings.ToLower(row.Channel),
		strings.ToLower(row.Country),
	)
}

// CompareRow compares a row against its cached confidence
func CompareRow(row models.PersistableBroadcast, cachedValue interface{}) (ChangeType, *int) {
	if cachedValue == nil {
		return ChangeTypeNew, nil
	}

	cachedStr, ok := cachedValue.(string)
	if !ok {
		return ChangeTypeNew, nil
	}

	cached, err := strconv.Atoi(cachedStr)
	if err != nil {
		// Corrupt entry, treat as new
		return ChangeTypeNew, nil
	}

	if row.ConfidenceScore <= cached {
		return ChangeTypeNone, nil
	}
	return ChangeTypeConfidence, &cached
}
