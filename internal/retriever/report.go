package retriever

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/explorer"
	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/internal/progress"
)

// DayState is the lifecycle position of a day within a run.
type DayState int

const (
	DayPending DayState = iota
	DaySkipped
	DayListDispatched
	DayListFetched
	DayCompleted
	DayFailed
	DayNotDispatched
)

func (s DayState) String() string {
	switch s {
	case DayPending:
		return "pending"
	case DaySkipped:
		return "skipped"
	case DayListDispatched:
		return "list_dispatched"
	case DayListFetched:
		return "list_fetched"
	case DayCompleted:
		return "completed"
	case DayFailed:
		return "failed"
	case DayNotDispatched:
		return "not_dispatched"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s DayState) Terminal() bool {
	switch s {
	case DaySkipped, DayCompleted, DayFailed, DayNotDispatched:
		return true
	default:
		return false
	}
}

// Stage names the pipeline step where a failure happened.
type Stage string

const (
	StageListing Stage = "listing"
	StageDetail  Stage = "detail"
	StageSave    Stage = "save"
)

// Failure describes a day listing or block handle that could not be harvested.
type Failure struct {
	Stage  Stage
	Day    time.Time
	Hash   string
	Height uint64
	Err    error
}

// Record converts the failure into its serialisable form.
func (f Failure) Record() model.FailureRecord {
	record := model.FailureRecord{
		Stage:  string(f.Stage),
		Day:    f.Day,
		Hash:   f.Hash,
		Height: f.Height,
	}
	if f.Err != nil {
		record.Message = f.Err.Error()
	}
	var apiErr *explorer.APIError
	if errors.As(f.Err, &apiErr) {
		record.StatusCode = apiErr.StatusCode
	}
	return record
}

// DayOutcome is the terminal state of one day.
type DayOutcome struct {
	Day   time.Time
	State DayState
}

// Report summarises a run.
type Report struct {
	Started  time.Time
	Finished time.Time

	Days                 []DayOutcome
	BlocksListed         int
	BlocksPersisted      int
	BlocksAlreadyPresent int
	Failures             []Failure

	// Interrupted is set when the stop signal fired before every day was dispatched.
	Interrupted bool
	Counters    progress.Snapshot
}

// Count returns how many days ended in state.
func (r *Report) Count(state DayState) int {
	n := 0
	for _, d := range r.Days {
		if d.State == state {
			n++
		}
	}
	return n
}

// Succeeded reports whether the run covered every day without failures.
func (r *Report) Succeeded() bool {
	return !r.Interrupted && len(r.Failures) == 0
}

// Records returns the failures in serialisable form.
func (r *Report) Records() []model.FailureRecord {
	records := make([]model.FailureRecord, 0, len(r.Failures))
	for _, f := range r.Failures {
		records = append(records, f.Record())
	}
	return records
}
