package retriever

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/workerpool"
)

// listDay fetches the block listing of day and fans its handles out to tier 2.
func (s *Service) listDay(ctx context.Context, tracker *tracker, detail *workerpool.Pool[model.BriefBlock], day time.Time) {
	logger := s.logger.With(zap.Time("day", day))

	started := time.Now()
	blocks, err := s.explorer.DayBlocks(ctx, day)
	s.metrics.ObserveListing(err, len(blocks), started)
	if err != nil {
		logger.Error("list day blocks failed", append(errorFields(err), zap.Error(err))...)
		tracker.listingFailed(Failure{Stage: StageListing, Day: day, Err: err})
		return
	}

	tracker.listingFetched(day, len(blocks))
	if len(blocks) == 0 {
		logger.Info("day has no blocks")
		return
	}

	levels := s.counters.Increase(day, int64(len(blocks)))
	s.metrics.SetPending(levels.Total)
	logger.Info("day listed", zap.Int("blocks", len(blocks)), zap.Int64("pending_total", levels.Total))

	for i, block := range blocks {
		block.Day = day
		if err := detail.Submit(ctx, block); err != nil {
			logger.Error("submit block handles failed", zap.Int("remaining", len(blocks)-i), zap.Error(err))
			for _, rest := range blocks[i:] {
				rest.Day = day
				s.settle(tracker, rest, outcomeFailed, newFailure(StageDetail, rest, fmt.Errorf("submit block: %w", err)))
			}
			return
		}
	}
}
