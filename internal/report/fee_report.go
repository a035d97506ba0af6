// Package report summarises stored fee rates for the draw command.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/safe"
)

// Bin aggregates the fee rates of blocks whose transaction count falls in [Low, High).
type Bin struct {
	Low          float64
	High         float64
	Blocks       int
	Transactions int

	// Fee rate distribution in satoshi per weight unit.
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64

	AverageFee btcutil.Amount
}

// FeeReport is the fee rate distribution binned by block transaction count.
type FeeReport struct {
	Blocks       int
	Transactions int
	Bins         []Bin
}

// Build bins blocks by transaction count and summarises each bin's fee rates.
func Build(rates []model.BlockFeeRates) (FeeReport, error) {
	if len(rates) == 0 {
		return FeeReport{}, nil
	}

	blocks := append([]model.BlockFeeRates(nil), rates...)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].TXCount < blocks[j].TXCount
	})

	counts := make([]float64, len(blocks))
	for i, b := range blocks {
		counts[i] = float64(b.TXCount)
	}

	dividers := binDividers(counts, DoaneBins(counts))
	hist := stat.Histogram(nil, dividers, counts, nil)

	report := FeeReport{Blocks: len(blocks), Bins: make([]Bin, 0, len(hist))}
	next := 0
	for i, n := range hist {
		members := blocks[next : next+int(n)]
		next += int(n)

		bin, err := summarise(members, dividers[i], dividers[i+1])
		if err != nil {
			return FeeReport{}, err
		}
		report.Transactions += bin.Transactions
		report.Bins = append(report.Bins, bin)
	}
	return report, nil
}

// binDividers spans k equal bins over sorted x. The last divider is nudged up so max is counted.
func binDividers(x []float64, k int) []float64 {
	lo, hi := x[0], x[len(x)-1]
	if lo == hi || k < 1 {
		return []float64{lo, math.Nextafter(hi, math.Inf(1))}
	}
	dividers := floats.Span(make([]float64, k+1), lo, hi)
	dividers[k] = math.Nextafter(hi, math.Inf(1))
	return dividers
}

func summarise(blocks []model.BlockFeeRates, low, high float64) (Bin, error) {
	bin := Bin{Low: low, High: high, Blocks: len(blocks)}

	var totalFee uint64
	var feeRates []float64
	for _, b := range blocks {
		totalFee += b.TotalFee
		feeRates = append(feeRates, b.FeeRates...)
	}
	bin.Transactions = len(feeRates)
	if len(feeRates) == 0 {
		return bin, nil
	}

	sort.Float64s(feeRates)
	bin.Min = feeRates[0]
	bin.Q1 = stat.Quantile(0.25, stat.Empirical, feeRates, nil)
	bin.Median = stat.Quantile(0.5, stat.Empirical, feeRates, nil)
	bin.Q3 = stat.Quantile(0.75, stat.Empirical, feeRates, nil)
	bin.Max = feeRates[len(feeRates)-1]
	bin.Mean = stat.Mean(feeRates, nil)

	avg, err := safe.Int64(totalFee / uint64(len(feeRates)))
	if err != nil {
		return Bin{}, fmt.Errorf("average fee of bin [%.0f, %.0f): %w", low, high, err)
	}
	bin.AverageFee = btcutil.Amount(avg)
	return bin, nil
}
