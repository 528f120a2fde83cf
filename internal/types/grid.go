// Package types provides type definitions for structured data used throughout the lifegrid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BoxKind discriminates the three kinds of grid cells.
type BoxKind string

// Grid box kinds.
const (
	BoxBirthday BoxKind = "birthday"
	BoxEvent    BoxKind = "event"
	BoxWeek     BoxKind = "week"
)

// GridBox represents one cell of the life grid: a birthday marker, a dated
// event, or an empty week. Date is the box's identity key for color lookup;
// the walker emits boxes in non-decreasing date order.
type GridBox struct {
	Kind    BoxKind `json:"kind"`
	Label   string  `json:"label"`
	Date    string  `json:"date"`
	Tooltip string  `json:"tooltip"`
	Age     int     `json:"age"`
	Year    int     `json:"year"`
	Source  Source  `json:"source,omitempty"` // set on event boxes only
}

// Row is an ordered, non-empty run of boxes sharing a display row.
// Rows partition the full box sequence without reordering or omission.
type Row []GridBox
