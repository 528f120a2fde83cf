// Package calendar walks a birth-to-present date range and emits the
// chronological sequence of grid boxes: one birthday box per year boundary
// and one box per week.
package calendar

import "time"

// dateLayout is the ISO calendar date format used as box identity keys.
const dateLayout = "2006-01-02"

// StartOfWeek returns the Sunday-aligned start of the week containing d.
func StartOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Anniversary returns the birth date's month/day anniversary in the given
// year. A February 29 birth date normalizes to March 1 in non-leap years.
func Anniversary(birth time.Time, year int) time.Time {
	return time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekAnchor computes the anchor date for week index w of the given year.
// Week boundaries always re-synchronize to the birth anniversary: in the
// birth year the anchor walks in 7-day steps from the Sunday-aligned week of
// the birth date; in every later year it is the Sunday-aligned start of the
// week containing (anniversary + 7w days), which prevents drift across leap
// years.
func WeekAnchor(birth time.Time, year, week int) time.Time {
	if year == birth.Year() {
		return StartOfWeek(birth).AddDate(0, 0, 7*week)
	}
	return StartOfWeek(Anniversary(birth, year).AddDate(0, 0, 7*week))
}
