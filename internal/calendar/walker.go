package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/lifegrid/internal/types"
)

// WalkOptions holds the inputs for a calendar walk.
type WalkOptions struct {
	BirthDate         time.Time
	StartYear         int // inclusive
	EndYear           int // inclusive
	Events            types.EventMapping
	Compact           bool
	ShowPersonalDates bool
}

// WalkResult is the full chronological box sequence plus the set of dates
// bearing milestone-flagged personal events, recorded as a side effect of the
// week-to-day remap so the color assigner sees the dates boxes actually
// carry.
type WalkResult struct {
	Boxes          []types.GridBox
	MilestoneDates map[string]bool
}

// Walk emits the grid box sequence for the configured year range. Per year Y
// with age = Y - StartYear:
//
//  1. For age > 0, a birthday box dated at the anniversary, emitted before
//     the year's first week box.
//  2. Week boxes for indices 0..52 in the birth year or 1..52 in later years
//     (week 0 duplicates the previous year's final week). A week whose anchor
//     falls on or after the next anniversary is skipped, so each age-year
//     yields 52 or 53 week boxes without overshooting into the next age.
//
// A start year after the end year produces an empty result, not an error.
func Walk(opts WalkOptions) WalkResult {
	result := WalkResult{MilestoneDates: make(map[string]bool)}

	for year := opts.StartYear; year <= opts.EndYear; year++ {
		age := year - opts.StartYear

		if age > 0 {
			result.Boxes = append(result.Boxes, birthdayBox(opts, age, year))
		}

		startWeek := 1
		if year == opts.BirthDate.Year() {
			startWeek = 0
		}
		nextAnniv := Anniversary(opts.BirthDate, year+1)

		for week := startWeek; week <= 52; week++ {
			anchor := WeekAnchor(opts.BirthDate, year, week)
			if !anchor.Before(nextAnniv) {
				continue
			}
			result.Boxes = append(result.Boxes, weekBox(opts, anchor, nextAnniv, age, year, result.MilestoneDates))
		}
	}

	return result
}

// birthdayBox builds the anniversary box for the given age.
func birthdayBox(opts WalkOptions, age, year int) types.GridBox {
	label := fmt.Sprintf("Age %d", age)
	if opts.Compact {
		label = strconv.Itoa(age)
	}
	anniv := Anniversary(opts.BirthDate, year)
	return types.GridBox{
		Kind:    types.BoxBirthday,
		Label:   label,
		Date:    anniv.Format(dateLayout),
		Tooltip: birthdayTooltip(age),
		Age:     age,
		Year:    year,
	}
}

// weekBox builds the box for one week: an event box when the week's days
// carry events, an empty week box otherwise. Milestone dates are recorded
// before compact-mode suppression; the suppressed box carries the event's
// remapped day, not the week anchor, so the recorded date is always a date
// some box carries and the color fold crosses it.
func weekBox(opts WalkOptions, anchor, nextAnniv time.Time, age, year int, milestones map[string]bool) types.GridBox {
	day, evs := findWeekEvents(opts.Events, anchor, nextAnniv)
	if len(evs) == 0 {
		return emptyWeekBox(anchor, age, year)
	}

	if hasMilestone(evs) {
		milestones[day.Format(dateLayout)] = true
	}

	primary := primaryEvent(evs)
	label := primary.Headline
	if opts.Compact {
		glyph := LeadingEmoji(primary.Headline)
		if glyph == "" {
			return emptyWeekBox(day, age, year)
		}
		label = glyph
	}

	return types.GridBox{
		Kind:    types.BoxEvent,
		Label:   strings.TrimSpace(label),
		Date:    day.Format(dateLayout),
		Tooltip: eventTooltip(day, evs, opts.ShowPersonalDates),
		Age:     age,
		Year:    year,
		Source:  primary.Source,
	}
}

// findWeekEvents looks up events for the week starting at anchor. The anchor
// date is checked first; if empty, the remaining six days are scanned in
// order, stopping at the first day strictly before the next anniversary with
// a non-empty event list. Events sit on their exact calendar date, which need
// not be the week's Sunday anchor.
func findWeekEvents(mapping types.EventMapping, anchor, nextAnniv time.Time) (time.Time, []types.Event) {
	if evs := mapping[anchor.Format(dateLayout)]; len(evs) > 0 {
		return anchor, evs
	}
	for offset := 1; offset < 7; offset++ {
		day := anchor.AddDate(0, 0, offset)
		if !day.Before(nextAnniv) {
			break
		}
		if evs := mapping[day.Format(dateLayout)]; len(evs) > 0 {
			return day, evs
		}
	}
	return anchor, nil
}

// emptyWeekBox builds a label-less week box. The date is the week's Sunday
// anchor for a genuinely empty week, or the event's day for a week whose
// label was suppressed in compact mode.
func emptyWeekBox(day time.Time, age, year int) types.GridBox {
	return types.GridBox{
		Kind:    types.BoxWeek,
		Date:    day.Format(dateLayout),
		Tooltip: weekTooltip(day),
		Age:     age,
		Year:    year,
	}
}

// primaryEvent selects the event a box is labeled after: the first
// milestone-flagged personal event, else the first event in list order.
func primaryEvent(evs []types.Event) types.Event {
	for _, ev := range evs {
		if ev.Source == types.SourcePersonal && ev.Milestone {
			return ev
		}
	}
	return evs[0]
}

// hasMilestone reports whether the list carries a milestone-flagged personal
// event.
func hasMilestone(evs []types.Event) bool {
	for _, ev := range evs {
		if ev.Source == types.SourcePersonal && ev.Milestone {
			return true
		}
	}
	return false
}
