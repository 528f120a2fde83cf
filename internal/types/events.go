// Package types provides type definitions for structured data used throughout the lifegrid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Source identifies which calendar an event was loaded from.
type Source string

// Event sources, in merge-priority order.
const (
	SourcePersonal  Source = "personal"
	SourceWorld     Source = "world"
	SourcePresident Source = "president"
)

// Event represents a single dated event from any source.
// Metadata carries source-specific fields (category, party, term number)
// that the pipeline passes through untouched for tooltip assembly.
type Event struct {
	Headline    string            `json:"headline"`
	Description string            `json:"description,omitempty"`
	Source      Source            `json:"source,omitempty"`
	Milestone   bool              `json:"milestone,omitempty"`
	Color       string            `json:"color,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// EventMapping maps an ISO calendar date (YYYY-MM-DD) to the ordered list
// of events recorded on that date. Within a date, personal events precede
// world events, which precede president events.
type EventMapping map[string][]Event

// Dates returns the mapping's keys in unspecified order.
func (m EventMapping) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	return dates
}
