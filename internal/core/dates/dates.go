// Package dates converts external slot dates into the two-level storage keys
// used by the event record: a year-less "M-D" day key and a "YYYY" year key.
//
// Day keys intentionally discard the year, so an event added for Dec 31 of
// one year surfaces on Dec 31 of every year (recurring-anniversary
// semantics).
package dates

import (
	"fmt"
	"time"

	perr "almanacco/internal/platform/errors"
)

// Date is a validated calendar date
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// externalLayout is the only accepted slot format. The slot-filling front end
// occasionally supplies partial dates or ranges; those must be rejected, not
// guessed.
const externalLayout = "2006-01-02"

// Parse validates a slot value in strict YYYY-MM-DD form. Impossible
// calendar dates (2024-02-30) fail the same way as malformed input.
func Parse(text string) (Date, error) {
	if text == "" {
		return Date{}, perr.InvalidDatef("date value is missing")
	}
	t, err := time.Parse(externalLayout, text)
	if err != nil {
		return Date{}, perr.Wrapf(err, perr.ErrorCodeInvalidDate, "invalid date format: %s", text)
	}
	// time.Parse tolerates non-canonical forms ("2024-2-3"); a round-trip
	// mismatch rejects anything but strict YYYY-MM-DD.
	if t.Format(externalLayout) != text {
		return Date{}, perr.InvalidDatef("date not in canonical form: %s", text)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DayKey returns the "M-D" storage key, never zero-padded
func (d Date) DayKey() string {
	return fmt.Sprintf("%d-%d", int(d.Month), d.Day)
}

// YearKey returns the 4-digit year grouping key
func (d Date) YearKey() string {
	return fmt.Sprintf("%04d", d.Year)
}

// String renders the date back in the external layout
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
