package retriever

import (
	"context"
	"fmt"
	"time"
)

type overlapGuard struct {
	repository Repository
}

// ShouldSkip reports whether storage already holds a block close to day's boundary.
// The probed window [day-12h, day-11h) includes its lower bound; day-12h itself counts as covered.
func (g *overlapGuard) ShouldSkip(ctx context.Context, day time.Time) (bool, error) {
	exists, err := g.repository.ExistsInTimeRange(ctx, day.Add(-guardWindowStart), day.Add(-guardWindowEnd))
	if err != nil {
		return false, fmt.Errorf("probe day %s: %w", day.Format(time.DateOnly), err)
	}
	return exists, nil
}
