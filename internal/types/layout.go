// Package types provides type definitions for structured data used throughout the lifegrid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResponsiveConstants holds the resolved pixel constants used for row packing.
// ContainerWidth is already safety-margined; ViewportWidth is carried
// separately because empty week cells are sized against the viewport, not the
// measured container.
type ResponsiveConstants struct {
	ContainerWidth  float64 `json:"container_width"`
	CharWidth       float64 `json:"char_width"`
	BasePadding     float64 `json:"base_padding"`
	WeekBoxMinWidth float64 `json:"week_box_min_width"`
	ViewportWidth   float64 `json:"viewport_width"`
	Compact         bool    `json:"compact,omitempty"`
	Breakpoint      string  `json:"breakpoint,omitempty"` // set when the static table was used
}
