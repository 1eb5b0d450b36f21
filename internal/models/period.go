package models

import (
	"fmt"
	"time"

	"github.com/hearthbudget/backend/internal/types"
)

// Window is a concrete half-open time interval [Start, End) resolved
// from a period and a reference instant. All boundaries are computed in
// the reporting timezone.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the instant falls into the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PeriodWindow returns the spend-to-date window for a period containing
// the reference instant. The window always ends at the reference
// itself, not at the end of the period: an alert reflects spending
// within the still-open period.
//
// Weeks begin on Sunday.
//
// PeriodWindow panics on an unknown period. The domain enumerates
// exactly three periods, anything else is a bug in the caller, not a
// recoverable condition.
func PeriodWindow(period types.Period, reference time.Time) Window {
	ref := reference.In(reportingLocation)

	var start time.Time
	switch period {
	case types.PeriodDaily:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, reportingLocation)
	case types.PeriodWeekly:
		// time.Weekday numbers Sunday as 0, so the weekday of the
		// reference is the number of days since the week began
		start = time.Date(ref.Year(), ref.Month(), ref.Day()-int(ref.Weekday()), 0, 0, 0, 0, reportingLocation)
	case types.PeriodMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, reportingLocation)
	default:
		panic(fmt.Sprintf("unknown period %q", period))
	}

	return Window{Start: start, End: reference}
}

// MonthWindow returns the window covering a full calendar month. The
// end is the first instant of the following month, so comparing with
// t < End includes the whole last day of the month.
func MonthWindow(month types.Month) Window {
	t := time.Time(month)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, reportingLocation)

	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}
