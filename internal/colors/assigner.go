package colors

import (
	"sort"

	"github.com/jonathan/lifegrid/internal/types"
)

// Assign produces the date-to-color map for the box sequence. Walking the
// box dates in ascending order, the current color starts at the palette's
// first entry and advances one palette slot whenever a milestone-bearing date
// is crossed; past the final entry the color freezes there, with no
// wraparound. An explicit per-event color override replaces the current color
// from its date forward until the next milestone advance or override; an
// advance past the palette end still ends the override, reverting to the
// frozen last entry. The
// returned map is total over every date in the box sequence, and boxes
// sharing a date share a color.
//
// An empty palette is a precondition violation and fails fast.
func Assign(boxes []types.GridBox, events types.EventMapping, palette []string) (map[string]string, error) {
	if len(palette) == 0 {
		return nil, &Error{Message: "palette must contain at least one color"}
	}

	milestones := collectMilestoneDates(boxes, events)

	// The walker emits same-date boxes adjacently, so folding over distinct
	// dates is the stable date-ordered walk; it also advances the palette
	// once per milestone date no matter how many boxes share it.
	dates := make([]string, 0, len(boxes))
	seen := make(map[string]bool, len(boxes))
	for _, box := range boxes {
		if !seen[box.Date] {
			seen[box.Date] = true
			dates = append(dates, box.Date)
		}
	}
	sort.SliceStable(dates, func(i, j int) bool { return dates[i] < dates[j] })

	assigned := make(map[string]string, len(dates))
	current := palette[0]
	index := 0
	for _, date := range dates {
		if milestones[date] {
			index++
			if index < len(palette) {
				current = palette[index]
			} else {
				current = palette[len(palette)-1]
			}
		}
		if override := overrideColor(events[date]); override != "" {
			current = override
		}
		assigned[date] = current
	}

	return assigned, nil
}

// collectMilestoneDates gathers every date bearing a milestone-flagged
// personal event, from the merged mapping directly and from the event boxes'
// own dates. The second pass covers boxes whose date was remapped away from
// the week anchor during the calendar walk.
func collectMilestoneDates(boxes []types.GridBox, events types.EventMapping) map[string]bool {
	milestones := make(map[string]bool)
	for date, list := range events {
		if hasPersonalMilestone(list) {
			milestones[date] = true
		}
	}
	for _, box := range boxes {
		if box.Kind == types.BoxEvent && hasPersonalMilestone(events[box.Date]) {
			milestones[box.Date] = true
		}
	}
	return milestones
}

// hasPersonalMilestone reports whether the list carries a milestone-flagged
// personal event.
func hasPersonalMilestone(evs []types.Event) bool {
	for _, ev := range evs {
		if ev.Source == types.SourcePersonal && ev.Milestone {
			return true
		}
	}
	return false
}

// overrideColor returns the first explicit color override in the day's event
// list, or the empty string.
func overrideColor(evs []types.Event) string {
	for _, ev := range evs {
		if ev.Color != "" {
			return ev.Color
		}
	}
	return ""
}
