// Package retriever harvests the blocks of a date range through a two-tier worker pipeline.
package retriever

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockharvest/internal/dayrange"
	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/workerpool"
)

// Service lists the blocks of every day in a range and persists their details.
type Service struct {
	explorer   Explorer
	repository Repository
	counters   Counters
	metrics    Metrics
	logger     *zap.Logger
	guard      *overlapGuard
	cfg        config
}

// New builds a Service with the given dependencies.
func New(
	repository Repository,
	explorer Explorer,
	counters Counters,
	metrics Metrics,
	logger *zap.Logger,
	opts ...Option,
) (*Service, error) {
	if repository == nil {
		return nil, errors.New("retriever repository is required")
	}
	if explorer == nil {
		return nil, errors.New("retriever explorer is required")
	}
	if counters == nil {
		return nil, errors.New("retriever counters is required")
	}
	if metrics == nil {
		return nil, errors.New("retriever metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		explorer:   explorer,
		repository: repository,
		counters:   counters,
		metrics:    metrics,
		logger:     logger,
		guard:      &overlapGuard{repository: repository},
		cfg:        newConfig(opts),
	}, nil
}

// Run harvests every day in [start, end) and returns once both tiers have drained.
// Cancelling ctx stops dispatching new days; work already dispatched runs to completion.
func (s *Service) Run(ctx context.Context, start, end time.Time) *Report {
	report := &Report{Started: time.Now()}
	tracker := newTracker()

	// Dispatched work must not observe the stop signal.
	workCtx := context.WithoutCancel(ctx)

	detail := workerpool.New(workCtx, s.cfg.detailWorkers,
		func(ctx context.Context, block model.BriefBlock) {
			s.handleBlock(ctx, tracker, block)
		},
		workerpool.WithQueueSize(s.cfg.detailQueue),
		workerpool.WithBackpressureHook(func() { s.metrics.ObserveBackpressure(tierDetail) }),
	)
	list := workerpool.New(workCtx, s.cfg.listWorkers,
		func(ctx context.Context, day time.Time) {
			s.listDay(ctx, tracker, detail, day)
		},
		workerpool.WithQueueSize(s.cfg.listQueue),
		workerpool.WithBackpressureHook(func() { s.metrics.ObserveBackpressure(tierList) }),
	)

	s.logger.Info("run started",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("list_workers", s.cfg.listWorkers),
		zap.Int("detail_workers", s.cfg.detailWorkers),
	)

	report.Interrupted = s.dispatch(ctx, tracker, list, dayrange.New(start, end))

	// Every tier-2 submission happens inside a tier-1 task, so tier 1 drains first.
	list.Close()
	list.Wait()
	detail.Close()
	detail.Wait()

	tracker.fill(report)
	report.Counters = s.counters.Snapshot()
	report.Finished = time.Now()

	s.logSummary(report)
	return report
}

// dispatch submits days in order and reports whether the stop signal cut it short.
func (s *Service) dispatch(ctx context.Context, tracker *tracker, list *workerpool.Pool[time.Time], days *dayrange.Iterator) bool {
	interrupted := false
	for {
		day, ok := days.Next()
		if !ok {
			return interrupted
		}
		logger := s.logger.With(zap.Time("day", day))

		if interrupted || ctx.Err() != nil {
			interrupted = true
			tracker.set(day, DayNotDispatched)
			continue
		}

		skip, err := s.guard.ShouldSkip(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				interrupted = true
				tracker.set(day, DayNotDispatched)
				continue
			}
			logger.Warn("overlap probe failed, fetching day anyway", zap.Error(err))
		}
		if skip {
			logger.Info("day already covered, skipping")
			tracker.set(day, DaySkipped)
			s.metrics.ObserveSkippedDay()
			continue
		}

		tracker.set(day, DayListDispatched)
		if err := list.Submit(ctx, day); err != nil {
			logger.Warn("day not dispatched", zap.Error(err))
			interrupted = true
			tracker.set(day, DayNotDispatched)
		}
	}
}

func (s *Service) logSummary(report *Report) {
	fields := []zap.Field{
		zap.Duration("elapsed", report.Finished.Sub(report.Started)),
		zap.Int("days_completed", report.Count(DayCompleted)),
		zap.Int("days_skipped", report.Count(DaySkipped)),
		zap.Int("days_failed", report.Count(DayFailed)),
		zap.Int("days_not_dispatched", report.Count(DayNotDispatched)),
		zap.Int("blocks_listed", report.BlocksListed),
		zap.Int("blocks_persisted", report.BlocksPersisted),
		zap.Int("blocks_already_present", report.BlocksAlreadyPresent),
		zap.Int("failures", len(report.Failures)),
		zap.Bool("interrupted", report.Interrupted),
	}
	s.logger.Info("run finished", fields...)

	for _, key := range report.Counters.NonZero() {
		s.logger.Warn("progress counter not settled", zap.Stringer("key", key), zap.Int64("value", report.Counters[key]))
	}
}
