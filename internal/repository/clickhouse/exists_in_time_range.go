package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ExistsInTimeRange reports whether any stored block has a timestamp in [from, to).
func (r *Repository) ExistsInTimeRange(ctx context.Context, from, to time.Time) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("exists_in_time_range", err, start)
	}()

	const query = `
SELECT count()
FROM harvest_blocks
WHERE timestamp >= ? AND timestamp < ?`

	var count uint64
	if err = r.conn.QueryRow(ctx, query, from.UTC(), to.UTC()).Scan(&count); err != nil {
		return false, fmt.Errorf("query blocks in time range: %w", err)
	}
	return count > 0, nil
}
