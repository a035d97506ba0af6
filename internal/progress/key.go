// Package progress tracks outstanding block work per day, month, year and in total.
package progress

import (
	"fmt"
	"time"
)

// Scope is the granularity of a counter key.
type Scope uint8

const (
	// ScopeDay counts blocks of one calendar day.
	ScopeDay Scope = iota
	// ScopeMonth counts blocks of one calendar month.
	ScopeMonth
	// ScopeYear counts blocks of one calendar year.
	ScopeYear
	// ScopeTotal counts blocks of the whole run.
	ScopeTotal
)

// Key identifies one counter.
type Key struct {
	Scope Scope
	Year  int
	Month time.Month
	Day   int
}

// DayKey returns the day counter key for t.
func DayKey(t time.Time) Key {
	y, m, d := t.Date()
	return Key{Scope: ScopeDay, Year: y, Month: m, Day: d}
}

// MonthKey returns the month counter key for t.
func MonthKey(t time.Time) Key {
	return Key{Scope: ScopeMonth, Year: t.Year(), Month: t.Month()}
}

// YearKey returns the year counter key for t.
func YearKey(t time.Time) Key {
	return Key{Scope: ScopeYear, Year: t.Year()}
}

// TotalKey returns the run-wide counter key.
func TotalKey() Key {
	return Key{Scope: ScopeTotal}
}

func (k Key) String() string {
	switch k.Scope {
	case ScopeDay:
		return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
	case ScopeMonth:
		return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
	case ScopeYear:
		return fmt.Sprintf("%04d", k.Year)
	default:
		return "total"
	}
}
