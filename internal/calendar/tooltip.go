package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/lifegrid/internal/types"
)

// monthAbbrev is the fixed English month-abbreviation table used in tooltips.
var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// formatDate renders a tooltip date. When showDay is false the day-of-month
// is withheld, leaving month and year only.
func formatDate(d time.Time, showDay bool) string {
	m := monthAbbrev[int(d.Month())-1]
	if showDay {
		return fmt.Sprintf("%s %d, %d", m, d.Day(), d.Year())
	}
	return fmt.Sprintf("%s %d", m, d.Year())
}

// sourceGlyph returns the tooltip prefix glyph for world and president
// events. Personal events carry no prefix.
func sourceGlyph(s types.Source) string {
	switch s {
	case types.SourceWorld:
		return "🌍 "
	case types.SourcePresident:
		return "🏛️ "
	default:
		return ""
	}
}

// eventTooltip assembles the tooltip for an event box: the date line followed
// by every event's headline and description in list order. The day-of-month
// is hidden when the day carries personal events and showPersonalDates is
// off.
func eventTooltip(date time.Time, evs []types.Event, showPersonalDates bool) string {
	showDay := showPersonalDates || !containsPersonal(evs)

	var sb strings.Builder
	sb.WriteString(formatDate(date, showDay))
	for _, ev := range evs {
		sb.WriteString("\n")
		sb.WriteString(sourceGlyph(ev.Source))
		sb.WriteString(ev.Headline)
		if ev.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(ev.Description)
		}
	}
	return sb.String()
}

// weekTooltip states the week's date only.
func weekTooltip(date time.Time) string {
	return formatDate(date, true)
}

// birthdayTooltip states the age reached at this anniversary.
func birthdayTooltip(age int) string {
	return fmt.Sprintf("Age %d years", age)
}

// containsPersonal reports whether any event in the list is personal.
func containsPersonal(evs []types.Event) bool {
	for _, ev := range evs {
		if ev.Source == types.SourcePersonal {
			return true
		}
	}
	return false
}
