package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ExistsByHeight reports whether a block with the given height is stored.
func (r *Repository) ExistsByHeight(ctx context.Context, height uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("exists_by_height", err, start)
	}()

	const query = `
SELECT count()
FROM harvest_blocks
WHERE height = ?`

	var count uint64
	if err = r.conn.QueryRow(ctx, query, height).Scan(&count); err != nil {
		return false, fmt.Errorf("query block by height: %w", err)
	}
	return count > 0, nil
}
