// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// Period shortcuts offered by the portal log view.
const (
	PeriodCurrentMonth = "current_month"
	PeriodPast3Months  = "past_3_months"
	PeriodPast6Months  = "past_6_months"
	PeriodAll          = "all"
)

// ResolvePeriodStart turns a portal period shortcut into a concrete start
// date: the first day of the relevant month in the local business calendar.
// "all" (and anything unrecognized) means no lower bound; there is never an
// end date, the range runs through now.
func ResolvePeriodStart(period string, now time.Time) *time.Time {
	var start time.Time
	switch period {
	case PeriodCurrentMonth:
		start = BeginningOfMonth(now)
	case PeriodPast3Months:
		start = BeginningOfMonth(now.AddDate(0, -2, 0))
	case PeriodPast6Months:
		start = BeginningOfMonth(now.AddDate(0, -5, 0))
	default:
		return nil
	}
	return &start
}
