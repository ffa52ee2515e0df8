package timeutil

import (
	"strings"
	"time"

	errorvalues "github.com/limbo/stravadictos/internal/error_values"
)

// DefaultTimezone is the club's reporting timezone. All logical days and
// week boundaries are computed in it, never in the fetch host's zone.
const DefaultTimezone = "America/Mexico_City"

const DayFormat = "2006-01-02"

// DayOf drops the clock part, leaving midnight of t's calendar date.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns midnight of the Monday starting t's week.
func MondayOf(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return DayOf(t).AddDate(0, 0, -daysSinceMonday)
}

// CompressedDate renders a date as 'ddmmyyyy', the format used in report
// file names.
func CompressedDate(t time.Time) string {
	return t.Format("02012006")
}

// ColumnName builds a report day column name, e.g. 'MON_0201' for
// Monday January 2nd.
func ColumnName(t time.Time) string {
	day := strings.ToUpper(t.Weekday().String()[:3])
	return day + "_" + t.Format("0201")
}

// DayIndex places date inside a Monday-start week: 0 for Monday through
// 6 for Sunday, -1 when the date falls outside the week.
func DayIndex(weekStart, date time.Time) int {
	idx := int(DayOf(date).Sub(DayOf(weekStart)).Hours() / 24)
	if idx < 0 || idx > 6 {
		return -1
	}
	return idx
}

// ValidateWeekRange checks the boundaries used to pre-seed week rows.
// Violations are caller mistakes and treated as fatal upstream.
func ValidateWeekRange(start, end time.Time) error {
	if start.Weekday() != time.Monday {
		return errorvalues.ErrStartNotMonday
	}
	if end.Weekday() != time.Sunday {
		return errorvalues.ErrEndNotSunday
	}
	return nil
}
