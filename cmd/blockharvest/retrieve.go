package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockharvest/internal/explorer"
	"github.com/goodnatureofminers/blockharvest/internal/metrics"
	"github.com/goodnatureofminers/blockharvest/internal/progress"
	"github.com/goodnatureofminers/blockharvest/internal/repository/redis"
	"github.com/goodnatureofminers/blockharvest/internal/retriever"
)

const (
	commandRetrieve = "retrieve"
	commandDraw     = "draw"
	commandFailures = "failures"

	journalTimeout = 10 * time.Second
)

type retrieveCommand struct {
	Args struct {
		Start date `positional-arg-name:"start" description:"first day, DD-MM-YYYY"`
		End   date `positional-arg-name:"end" description:"day after the last one, DD-MM-YYYY"`
	} `positional-args:"yes" required:"yes"`
}

func (c *retrieveCommand) validate(o *options) error {
	start, end, err := c.span(o)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return configErrorf("end %s must be after start %s", c.Args.End, c.Args.Start)
	}
	return nil
}

func (c *retrieveCommand) span(o *options) (time.Time, time.Time, error) {
	loc, err := o.location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return c.Args.Start.In(loc), c.Args.End.In(loc), nil
}

func retrieve(ctx context.Context, opts *options, out io.Writer, logger *zap.Logger) error {
	start, end, err := opts.Retrieve.span(opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	var journal *redis.FailureJournal
	if opts.RedisURL != "" {
		journal, err = redis.NewFailureJournal(opts.RedisURL, opts.RedisTTL, metrics.NewRepository("redis"))
		if err != nil {
			return &configError{err: err}
		}
		defer func() {
			_ = journal.Close()
		}()
	}

	store, err := openStorage(ctx, opts.StorageDSN)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	client, err := explorer.NewClient(
		opts.ExplorerURL,
		metrics.NewExplorerClient(),
		logger.Named("explorer"),
		explorer.WithTimeout(opts.ExplorerTimeout),
		explorer.WithRateLimit(opts.ExplorerRPS),
		explorer.WithRetries(opts.ExplorerRetries, opts.ExplorerRetryInterval),
	)
	if err != nil {
		return &configError{err: err}
	}

	svc, err := retriever.New(
		store,
		client,
		progress.NewRegistry(),
		metrics.NewRetriever(),
		logger.Named("retriever"),
		retriever.WithListWorkers(opts.ListWorkers),
		retriever.WithListQueue(opts.ListQueue),
		retriever.WithDetailWorkers(opts.DetailWorkers),
		retriever.WithDetailQueue(opts.DetailQueue),
	)
	if err != nil {
		return err
	}

	report := svc.Run(ctx, start, end)
	if err := writeRunReport(out, runID, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if journal != nil && len(report.Failures) > 0 {
		jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
		defer cancel()
		if err := journal.Record(jctx, runID, report.Records()); err != nil {
			logger.Error("journal failures failed", zap.Error(err))
		} else {
			logger.Info("failures journaled", zap.String("key", redis.Key(runID)), zap.Int("failures", len(report.Failures)))
		}
	}

	switch {
	case report.Interrupted:
		return errInterrupted
	case len(report.Failures) > 0:
		return &failuresError{count: len(report.Failures)}
	default:
		return nil
	}
}
