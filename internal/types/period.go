package types

import "fmt"

// Period is the recurrence window a spending alert's limit applies to.
//
// The domain enumerates exactly three periods. Code resolving a Period
// to a time window treats any other value as a programming error.
//
// swagger:enum Period
type Period string

const (
	PeriodDaily   Period = "DAILY"
	PeriodWeekly  Period = "WEEKLY"
	PeriodMonthly Period = "MONTHLY"
)

// Valid reports whether the period is one of the three known values.
func (p Period) Valid() bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodMonthly
}

// String implements the fmt.Stringer interface.
func (p Period) String() string {
	return string(p)
}

// ParsePeriod parses a period tag.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("%q is not a valid period", s)
	}

	return p, nil
}
