package writer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XavierBriggs/Herald/internal/metrics"
	"github.com/XavierBriggs/Herald/pkg/models"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultBatchSize = 100
	streamKeyFormat  = "broadcasts.linked.%s" // broadcasts.linked.soccer
)

// Write result label values
const (
	ResultWritten = "written"
	ResultSkipped = "skipped"
)

// Writer persists broadcast rows to Postgres in chunks and publishes each
// committed chunk to a Redis stream
type Writer struct {
	db        *sql.DB
	redis     *redis.Client
	batchSize int
	logger    *logrus.Logger
}

// StreamMessage represents a message published to Redis Stream
type StreamMessage struct {
	RunID           string    `json:"run_id"`
	SportKey        string    `json:"sport_key"`
	FixtureID       string    `json:"fixture_id"`
	Channel         string    `json:"channel"`
	Country         string    `json:"country"`
	Source          string    `json:"source"`
	SourceID        string    `json:"source_id"`
	ConfidenceScore int       `json:"confidence_score"`
	LinkedAt        time.Time `json:"linked_at"`
}

// Summary reports what one WriteBroadcasts call did
type Summary struct {
	Chunks  int
	Written int
	Skipped int
}

// NewWriter creates a writer. A nil redis client disables stream publishing.
func NewWriter(db *sql.DB, redisClient *redis.Client, batchSize int, logger *logrus.Logger) *Writer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Writer{
		db:        db,
		redis:     redisClient,
		batchSize: batchSize,
		logger:    logger,
	}
}

// WriteBroadcasts upserts rows chunk by chunk. Rows whose stored confidence is
// equal or higher are left untouched and counted as skipped. A failed chunk
// aborts the call; chunks committed before it stay committed.
func (w *Writer) WriteBroadcasts(ctx context.Context, sportKey, runID string, rows []models.PersistableBroadcast) (Summary, error) {
	var summary Summary

	for _, chunk := range Chunk(rows, w.batchSize) {
		written, err := w.writeChunk(ctx, chunk)
		if err != nil {
			return summary, fmt.Errorf("write chunk %d: %w", summary.Chunks, err)
		}

		summary.Chunks++
		summary.Written += int(written)
		summary.Skipped += len(chunk) - int(written)

		if err := w.publishToStream(ctx, sportKey, runID, chunk); err != nil {
			// DB is source of truth
			w.logger.WithError(err).WithFields(logrus.Fields{
				"sport":  sportKey,
				"run_id": runID,
			}).Warn("publish to stream failed")
		}
	}

	metrics.WriterRowsTotal.WithLabelValues(sportKey, ResultWritten).Add(float64(summary.Written))
	metrics.WriterRowsTotal.WithLabelValues(sportKey, ResultSkipped).Add(float64(summary.Skipped))

	return summary, nil
}

func (w *Writer) writeChunk(ctx context.Context, rows []models.PersistableBroadcast) (int64, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	written, err := upsertBroadcasts(ctx, tx, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert broadcasts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

// upsertBroadcasts inserts rows, raising confidence on existing rows only when the new value is higher
func upsertBroadcasts(ctx context.Context, tx *sql.Tx, rows []models.PersistableBroadcast) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO broadcasts (
			fixture_id, channel, country, created_by, source, source_id, confidence_score
		)
		SELECT * FROM UNNEST(
			$1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[], $7::int[]
		)
		ON CONFLICT (fixture_id, channel, country, source)
		DO UPDATE SET
			confidence_score = EXCLUDED.confidence_score,
			source_id = EXCLUDED.source_id,
			updated_at = NOW()
		WHERE broadcasts.confidence_score < EXCLUDED.confidence_score
	`

	fixtureIDs := make([]string, len(rows))
	channels := make([]string, len(rows))
	countries := make([]string, len(rows))
	createdBy := make([]string, len(rows))
	sources := make([]string, len(rows))
	sourceIDs := make([]string, len(rows))
	confidences := make([]int64, len(rows))

	for i, row := range rows {
		fixtureIDs[i] = row.FixtureID
		channels[i] = row.Channel
		countries[i] = row.Country
		createdBy[i] = row.CreatedBy
		sources[i] = row.Source
		sourceIDs[i] = row.SourceID
		confidences[i] = int64(row.ConfidenceScore)
	}

	result, err := tx.ExecContext(ctx, query,
		pq.Array(fixtureIDs), pq.Array(channels), pq.Array(countries), pq.Array(createdBy),
		pq.Array(sources), pq.Array(sourceIDs), pq.Array(confidences),
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// publishToStream publishes committed rows to the sport's link stream
func (w *Writer) publishToStream(ctx context.Context, sportKey, runID string, rows []models.PersistableBroadcast) error {
	if w.redis == nil || len(rows) == 0 {
		return nil
	}

	streamKey := fmt.Sprintf(streamKeyFormat, sportKey)
	linkedAt := time.Now().UTC()

	pipe := w.redis.Pipeline()
	for _, row := range rows {
		msgJSON, err := json.Marshal(NewStreamMessage(sportKey, runID, row, linkedAt))
		if err != nil {
			return fmt.Errorf("marshal stream message: %w", err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: streamKey,
			Values: map[string]interface{}{
				"data": msgJSON,
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline exec for stream: %w", err)
	}
	return nil
}

// NewStreamMessage builds the stream payload for one row
func NewStreamMessage(sportKey, runID string, row models.PersistableBroadcast, linkedAt time.Time) StreamMessage {
	return StreamMessage{
		RunID:           runID,
		SportKey:        sportKey,
		FixtureID:       row.FixtureID,
		Channel:         row.Channel,
		Country:         row.Country,
		Source:          row.Source,
		SourceID:        row.SourceID,
		ConfidenceScore: row.ConfidenceScore,
		LinkedAt:        linkedAt,
	}
}

// Chunk splits rows into consecutive slices of at most size rows
func Chunk(rows []models.PersistableBroadcast, size int) [][]models.PersistableBroadcast {
	if len(rows) == 0 {
		return nil
	}
	if size <= 0 {
		size = defaultBatchSize
	}

	chunks := make([][]models.PersistableBroadcast, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
