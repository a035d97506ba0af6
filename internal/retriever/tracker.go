package retriever

import (
	"sort"
	"sync"
	"time"
)

type blockOutcome string

const (
	outcomePersisted      blockOutcome = "persisted"
	outcomeAlreadyPresent blockOutcome = "already_present"
	outcomeFailed         blockOutcome = "failed"
)

type dayEntry struct {
	state   DayState
	pending int
	failed  bool
}

// tracker records day transitions and block outcomes shared by both tiers.
type tracker struct {
	mu        sync.Mutex
	days      map[int64]*dayEntry
	order     []time.Time
	listed    int
	persisted int
	present   int
	failures  []Failure
}

func newTracker() *tracker {
	return &tracker{days: make(map[int64]*dayEntry)}
}

func (t *tracker) set(day time.Time, state DayState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.days[day.Unix()]
	if !ok {
		entry = &dayEntry{}
		t.days[day.Unix()] = entry
		t.order = append(t.order, day)
	}
	entry.state = state
}

func (t *tracker) listingFailed(f Failure) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failures = append(t.failures, f)
	if entry, ok := t.days[f.Day.Unix()]; ok {
		entry.state = DayFailed
	}
}

// listingFetched moves day to ListFetched with n handles outstanding.
func (t *tracker) listingFetched(day time.Time, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.listed += n
	entry, ok := t.days[day.Unix()]
	if !ok {
		return
	}
	entry.pending = n
	entry.state = DayListFetched
	if n == 0 {
		entry.state = DayCompleted
	}
}

// settle records the outcome of one handle of day. failure is only read for outcomeFailed.
func (t *tracker) settle(day time.Time, outcome blockOutcome, failure Failure) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch outcome {
	case outcomePersisted:
		t.persisted++
	case outcomeAlreadyPresent:
		t.present++
	case outcomeFailed:
		t.failures = append(t.failures, failure)
	}

	entry, ok := t.days[day.Unix()]
	if !ok {
		return
	}
	if outcome == outcomeFailed {
		entry.failed = true
	}
	entry.pending--
	if entry.pending > 0 {
		return
	}
	entry.state = DayCompleted
	if entry.failed {
		entry.state = DayFailed
	}
}

func (t *tracker) fill(report *Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	report.Days = make([]DayOutcome, 0, len(t.order))
	for _, day := range t.order {
		report.Days = append(report.Days, DayOutcome{Day: day, State: t.days[day.Unix()].state})
	}
	report.BlocksListed = t.listed
	report.BlocksPersisted = t.persisted
	report.BlocksAlreadyPresent = t.present

	report.Failures = append([]Failure(nil), t.failures...)
	sort.SliceStable(report.Failures, func(i, j int) bool {
		a, b := report.Failures[i], report.Failures[j]
		if !a.Day.Equal(b.Day) {
			return a.Day.Before(b.Day)
		}
		return a.Height > b.Height
	})
}
