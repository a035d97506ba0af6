package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockharvest/internal/metrics"
	"github.com/goodnatureofminers/blockharvest/internal/repository/redis"
)

type failuresCommand struct {
	Args struct {
		RunID string `positional-arg-name:"run-id" description:"run id printed by retrieve"`
	} `positional-args:"yes" required:"yes"`
}

func listFailures(ctx context.Context, opts *options, out io.Writer) error {
	journal, err := redis.NewFailureJournal(opts.RedisURL, opts.RedisTTL, metrics.NewRepository("redis"))
	if err != nil {
		return &configError{err: err}
	}
	defer func() {
		_ = journal.Close()
	}()

	records, err := journal.Failures(ctx, opts.Failures.Args.RunID)
	if err != nil {
		return fmt.Errorf("load failures: %w", err)
	}
	return writeFailureRecords(out, records)
}
