// Package types implements special types for the backend.
package types

import (
	"errors"
	"time"
)

// Period is the recurrence window of a budget.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodCustom  Period = "custom"
)

var ErrPeriodInvalid = errors.New("the budget period must be one of: weekly, monthly, yearly, custom")

// Valid reports whether the period is one of the known values.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}

	return false
}

// End returns the last day covered by a period starting at start.
//
// For PeriodCustom the zero time is returned, the caller has to supply
// an explicit end date.
func (p Period) End(start time.Time) time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodWeekly:
		return start.AddDate(0, 0, 6)
	case PeriodMonthly:
		return start.AddDate(0, 1, -1)
	case PeriodYearly:
		return start.AddDate(1, 0, -1)
	}

	return time.Time{}
}
