package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockharvest/pkg/safe"
)

// ExistsByHeight reports whether a block with the given height is stored.
func (r *Repository) ExistsByHeight(ctx context.Context, height uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("exists_by_height", err, start)
	}()

	h, err := safe.Int64(height)
	if err != nil {
		return false, fmt.Errorf("block height: %w", err)
	}

	const query = `SELECT EXISTS (SELECT 1 FROM blocks WHERE height = $1)`

	var exists bool
	if err = r.pool.QueryRow(ctx, query, h).Scan(&exists); err != nil {
		return false, fmt.Errorf("query block by height: %w", err)
	}
	return exists, nil
}

// ExistsInTimeRange reports whether any stored block has a timestamp in [from, to).
func (r *Repository) ExistsInTimeRange(ctx context.Context, from, to time.Time) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("exists_in_time_range", err, start)
	}()

	const query = `SELECT EXISTS (SELECT 1 FROM blocks WHERE timestamp >= $1 AND timestamp < $2)`

	var exists bool
	if err = r.pool.QueryRow(ctx, query, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("query blocks in time range: %w", err)
	}
	return exists, nil
}
