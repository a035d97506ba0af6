// Package dayrange enumerates calendar days between two instants.
package dayrange

import (
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/clock"
)

// Iterator yields midnight-aligned day boundaries from start up to but excluding end.
// Boundaries are computed in the location of start. An exhausted Iterator stays exhausted.
type Iterator struct {
	next time.Time
	end  time.Time
	loc  *time.Location
}

// New creates an Iterator over [start, end). It yields nothing when end is not after start.
func New(start, end time.Time) *Iterator {
	loc := start.Location()
	if !end.After(start) {
		return &Iterator{next: end, end: end, loc: loc}
	}
	return &Iterator{
		next: clock.MidnightIn(start, loc),
		end:  end,
		loc:  loc,
	}
}

// Next returns the next day boundary and true, or the zero time and false once exhausted.
func (it *Iterator) Next() (time.Time, bool) {
	if !it.next.Before(it.end) {
		return time.Time{}, false
	}

	day := it.next
	y, m, d := day.Date()
	it.next = time.Date(y, m, d+1, 0, 0, 0, 0, it.loc)
	return day, true
}

