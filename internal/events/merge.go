// Package events provides loading, validation, and merging of the three
// date-keyed event sources (personal, world, president).
package events

import (
	"github.com/jonathan/lifegrid/internal/types"
)

// Merge combines the three event mappings into a single mapping keyed by ISO
// date. For every date appearing in any enabled input, the value list
// concatenates in source-priority order: personal, then world, then
// president. Events are never dropped, deduplicated, or reordered within a
// source; each event is tagged with its source on the way in. The world and
// president inputs participate only when their flags are set.
func Merge(personal, world, president types.EventMapping, includeWorld, includePresident bool) types.EventMapping {
	merged := make(types.EventMapping)

	collectDates := func(mapping types.EventMapping) {
		for date := range mapping {
			if _, ok := merged[date]; !ok {
				merged[date] = nil
			}
		}
	}
	collectDates(personal)
	if includeWorld {
		collectDates(world)
	}
	if includePresident {
		collectDates(president)
	}

	for date := range merged {
		list := make([]types.Event, 0)
		list = appendTagged(list, personal[date], types.SourcePersonal)
		if includeWorld {
			list = appendTagged(list, world[date], types.SourceWorld)
		}
		if includePresident {
			list = appendTagged(list, president[date], types.SourcePresident)
		}
		merged[date] = list
	}

	return merged
}

// appendTagged appends the events to dst with their source set.
func appendTagged(dst []types.Event, src []types.Event, source types.Source) []types.Event {
	for _, ev := range src {
		ev.Source = source
		dst = append(dst, ev)
	}
	return dst
}
