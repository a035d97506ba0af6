package progress

import (
	"sort"
	"sync"
	"time"
)

// Levels is a consistent view of the four counters touched by one mutation.
type Levels struct {
	Day   int64
	Month int64
	Year  int64
	Total int64
}

// Snapshot is a point-in-time copy of every counter.
type Snapshot map[Key]int64

// NonZero returns the keys whose counters are not zero, ordered by scope and date.
func (s Snapshot) NonZero() []Key {
	keys := make([]Key, 0)
	for k, v := range s {
		if v != 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return keys
}

// Registry holds counters keyed by day, month, year and total.
// Every mutation updates the four keys of a day under one lock.
type Registry struct {
	mu     sync.Mutex
	counts map[Key]int64
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[Key]int64)}
}

// Increase adds delta to the counters of day and returns their new values.
func (r *Registry) Increase(day time.Time, delta int64) Levels {
	return r.add(day, delta)
}

// Decrease subtracts delta from the counters of day and returns their new values.
func (r *Registry) Decrease(day time.Time, delta int64) Levels {
	return r.add(day, -delta)
}

// Snapshot copies the current counters.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(Snapshot, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

func (r *Registry) add(day time.Time, delta int64) Levels {
	dayKey, monthKey, yearKey, totalKey := DayKey(day), MonthKey(day), YearKey(day), TotalKey()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counts[dayKey] += delta
	r.counts[monthKey] += delta
	r.counts[yearKey] += delta
	r.counts[totalKey] += delta

	return Levels{
		Day:   r.counts[dayKey],
		Month: r.counts[monthKey],
		Year:  r.counts[yearKey],
		Total: r.counts[totalKey],
	}
}
