package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockharvest/internal/report"
)

type drawCommand struct{}

func draw(ctx context.Context, opts *options, out io.Writer) error {
	store, err := openStorage(ctx, opts.StorageDSN)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	rates, err := store.BlockFeeRates(ctx)
	if err != nil {
		return fmt.Errorf("load fee rates: %w", err)
	}

	feeReport, err := report.Build(rates)
	if err != nil {
		return fmt.Errorf("build fee report: %w", err)
	}
	return report.Render(out, feeReport)
}
