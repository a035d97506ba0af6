// Package redis keeps a replayable journal of harvest failures in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

const (
	keyPrefix  = "blockharvest:failures:"
	defaultTTL = 30 * 24 * time.Hour
)

// FailureJournal stores failure records of a run in a sorted set scored by day.
type FailureJournal struct {
	client  Client
	metrics Metrics
	ttl     time.Duration
}

// NewFailureJournal connects to the Redis server at url.
func NewFailureJournal(url string, ttl time.Duration, metrics Metrics) (*FailureJournal, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}
	if metrics == nil {
		return nil, errors.New("failure journal metrics is required")
	}

	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return newFailureJournal(goredis.NewClient(opts), ttl, metrics), nil
}

func newFailureJournal(client Client, ttl time.Duration, metrics Metrics) *FailureJournal {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &FailureJournal{client: client, metrics: metrics, ttl: ttl}
}

// Key returns the Redis key holding the records of runID.
func Key(runID string) string {
	return keyPrefix + runID
}

// Record appends records to the journal of runID.
func (j *FailureJournal) Record(ctx context.Context, runID string, records []model.FailureRecord) error {
	start := time.Now()
	var err error
	defer func() {
		j.metrics.Observe("record_failures", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	members := make([]goredis.Z, 0, len(records))
	for _, record := range records {
		payload, marshalErr := json.Marshal(record)
		if marshalErr != nil {
			err = fmt.Errorf("marshal failure record: %w", marshalErr)
			return err
		}
		members = append(members, goredis.Z{
			Score:  float64(record.Day.Unix()),
			Member: string(payload),
		})
	}

	key := Key(runID)
	if err = j.client.ZAdd(ctx, key, members...).Err(); err != nil {
		return fmt.Errorf("add failure records: %w", err)
	}
	if err = j.client.Expire(ctx, key, j.ttl).Err(); err != nil {
		return fmt.Errorf("expire failure records: %w", err)
	}
	return nil
}

// Failures returns the journal of runID ordered by day.
func (j *FailureJournal) Failures(ctx context.Context, runID string) ([]model.FailureRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		j.metrics.Observe("list_failures", err, start)
	}()

	members, err := j.client.ZRange(ctx, Key(runID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list failure records: %w", err)
	}

	records := make([]model.FailureRecord, 0, len(members))
	for _, member := range members {
		var record model.FailureRecord
		if err = json.Unmarshal([]byte(member), &record); err != nil {
			return nil, fmt.Errorf("decode failure record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Close releases the Redis connection.
func (j *FailureJournal) Close() error {
	return j.client.Close()
}
