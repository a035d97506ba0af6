package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the report as a table to w.
func Render(w io.Writer, r FeeReport) error {
	if len(r.Bins) == 0 {
		_, err := fmt.Fprintln(w, "no stored blocks")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("fee rate (sat/WU) by block tx count, %d blocks, %d txs", r.Blocks, r.Transactions))
	t.AppendHeader(table.Row{"tx count", "blocks", "txs", "min", "q1", "median", "q3", "max", "mean", "avg fee"})

	for _, b := range r.Bins {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.0f-%.0f", b.Low, b.High),
			b.Blocks,
			b.Transactions,
			formatRate(b.Min),
			formatRate(b.Q1),
			formatRate(b.Median),
			formatRate(b.Q3),
			formatRate(b.Max),
			formatRate(b.Mean),
			b.AverageFee.String(),
		})
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
