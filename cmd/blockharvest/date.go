package main

import (
	"fmt"
	"time"
)

const dateLayout = "02-01-2006"

// date is a calendar date given as DD-MM-YYYY, placed in a time zone once options are parsed.
type date struct {
	year  int
	month time.Month
	day   int
}

func (d *date) UnmarshalFlag(value string) error {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("date %q is not DD-MM-YYYY", value)
	}
	d.year, d.month, d.day = t.Date()
	return nil
}

func (d date) MarshalFlag() (string, error) {
	return d.String(), nil
}

func (d date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.day, d.month, d.year)
}

// In returns midnight of the date in loc.
func (d date) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}
