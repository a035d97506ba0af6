package retriever

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockharvest/internal/explorer"
	"github.com/goodnatureofminers/blockharvest/internal/model"
)

// handleBlock settles one block handle. The counters are decreased exactly once whatever happens.
func (s *Service) handleBlock(ctx context.Context, tracker *tracker, block model.BriefBlock) {
	started := time.Now()
	outcome, failure := s.fetchBlock(ctx, block)
	s.metrics.ObserveBlock(string(outcome), started)
	s.settle(tracker, block, outcome, failure)
}

func (s *Service) fetchBlock(ctx context.Context, block model.BriefBlock) (blockOutcome, Failure) {
	logger := s.logger.With(zap.String("hash", block.Hash), zap.Uint64("height", block.Height))

	exists, err := s.repository.ExistsByHeight(ctx, block.Height)
	switch {
	case err != nil:
		logger.Warn("height probe failed, fetching block anyway", zap.Error(err))
	case exists:
		return outcomeAlreadyPresent, Failure{}
	}

	detailed, err := s.explorer.Block(ctx, block.Hash)
	if err != nil {
		logger.Error("fetch block failed", append(errorFields(err), zap.Error(err))...)
		return outcomeFailed, newFailure(StageDetail, block, err)
	}

	row, txs, err := detailed.Persistable()
	if err != nil {
		logger.Error("invalid block", zap.Error(err))
		return outcomeFailed, newFailure(StageDetail, block, err)
	}
	if err := s.repository.SaveBlockWithTransactions(ctx, row, txs); err != nil {
		if errors.Is(err, model.ErrHeightConflict) {
			logger.Debug("block already stored")
			return outcomeAlreadyPresent, Failure{}
		}
		logger.Error("save block failed", zap.Error(err))
		return outcomeFailed, newFailure(StageSave, block, err)
	}
	return outcomePersisted, Failure{}
}

func (s *Service) settle(tracker *tracker, block model.BriefBlock, outcome blockOutcome, failure Failure) {
	levels := s.counters.Decrease(block.Day, 1)
	s.metrics.SetPending(levels.Total)
	tracker.settle(block.Day, outcome, failure)

	s.logger.Info("block settled",
		zap.Uint64("height", block.Height),
		zap.String("outcome", string(outcome)),
		zap.Int64("total", levels.Total),
		zap.Int64("year", levels.Year),
		zap.Int64("month", levels.Month),
		zap.Int64("day", levels.Day),
	)
}

func newFailure(stage Stage, block model.BriefBlock, err error) Failure {
	return Failure{
		Stage:  stage,
		Day:    block.Day,
		Hash:   block.Hash,
		Height: block.Height,
		Err:    err,
	}
}

func errorFields(err error) []zap.Field {
	var apiErr *explorer.APIError
	if errors.As(err, &apiErr) {
		return []zap.Field{
			zap.String("resource", apiErr.Resource),
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
		}
	}
	return nil
}
