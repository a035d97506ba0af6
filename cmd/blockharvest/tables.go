package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/internal/retriever"
)

func writeRunReport(out io.Writer, runID string, report *retriever.Report) error {
	summary := table.NewWriter()
	summary.SetStyle(table.StyleLight)
	summary.SetTitle(fmt.Sprintf("run %s", runID))
	summary.AppendRows([]table.Row{
		{"elapsed", report.Finished.Sub(report.Started).Round(time.Millisecond)},
		{"days completed", report.Count(retriever.DayCompleted)},
		{"days skipped", report.Count(retriever.DaySkipped)},
		{"days failed", report.Count(retriever.DayFailed)},
		{"days not dispatched", report.Count(retriever.DayNotDispatched)},
		{"blocks listed", report.BlocksListed},
		{"blocks persisted", report.BlocksPersisted},
		{"blocks already present", report.BlocksAlreadyPresent},
		{"interrupted", report.Interrupted},
	})
	if _, err := fmt.Fprintln(out, summary.Render()); err != nil {
		return err
	}

	if len(report.Failures) == 0 {
		return nil
	}
	return writeFailureRecords(out, report.Records())
}

func writeFailureRecords(out io.Writer, records []model.FailureRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "no failures")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%d failures", len(records)))
	t.AppendHeader(table.Row{"stage", "day", "height", "hash", "status", "error"})
	for _, r := range records {
		height, status := "", ""
		if r.Height > 0 {
			height = fmt.Sprint(r.Height)
		}
		if r.StatusCode > 0 {
			status = fmt.Sprint(r.StatusCode)
		}
		t.AppendRow(table.Row{r.Stage, r.Day.Format(time.DateOnly), height, r.Hash, status, r.Message})
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}
