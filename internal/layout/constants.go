// Package layout resolves responsive pixel constants and greedily packs the
// box sequence into display rows.
package layout

import (
	"math"

	"github.com/jonathan/lifegrid/internal/types"
)

const (
	// safetyMargin shrinks a measured container before packing so renderer
	// rounding cannot overflow a row.
	safetyMargin = 0.95

	// Empty week cells are sized to a fixed visual grid keyed to the
	// viewport rather than the measured container.
	compactEmptyCellWidth = 10.0
	emptyCellWidthNarrow  = 18.0
	emptyCellWidthWide    = 26.0
	narrowViewportMax     = 768.0
)

// modeConstants holds the per-mode character and padding constants of one
// breakpoint or dynamic-ladder rung.
type modeConstants struct {
	charWidth       float64
	basePadding     float64
	weekBoxMinWidth float64
}

// breakpoint is one entry of the static table used when no container
// measurement is available. Container widths are precomputed with the safety
// margin already applied.
type breakpoint struct {
	name      string
	container float64
	normal    modeConstants
	compact   modeConstants
}

// breakpoints mirrors the stylesheet's media queries exactly:
// <480, <=768, <1024, <1400, <1800, else ultrawide.
var breakpoints = []breakpoint{
	{name: "extraSmall", container: 418, normal: modeConstants{5.5, 2, 14}, compact: modeConstants{4.5, 1.5, 8}},
	{name: "mobile", container: 684, normal: modeConstants{6, 2.5, 16}, compact: modeConstants{5, 2, 9}},
	{name: "tablet", container: 931, normal: modeConstants{6.5, 3, 18}, compact: modeConstants{5.5, 2, 10}},
	{name: "desktop", container: 1292, normal: modeConstants{7, 3.5, 20}, compact: modeConstants{6, 2.5, 11}},
	{name: "wide", container: 1672, normal: modeConstants{7.5, 4, 22}, compact: modeConstants{6, 3, 12}},
	{name: "ultrawide", container: 1824, normal: modeConstants{8, 4, 24}, compact: modeConstants{6.5, 3, 13}},
}

// ResolveConstants derives the packing constants from the measured container
// width when one is available, and from the static breakpoint table
// otherwise. It is a pure function of its arguments: no viewport polling
// happens here. A non-finite or non-positive measured width is ignored, not
// propagated.
func ResolveConstants(compact bool, measuredWidth, viewportWidth float64) types.ResponsiveConstants {
	if validWidth(measuredWidth) {
		mc := dynamicConstants(compact, measuredWidth)
		vp := viewportWidth
		if !validWidth(vp) {
			vp = measuredWidth
		}
		return types.ResponsiveConstants{
			ContainerWidth:  measuredWidth * safetyMargin,
			CharWidth:       mc.charWidth,
			BasePadding:     mc.basePadding,
			WeekBoxMinWidth: mc.weekBoxMinWidth,
			ViewportWidth:   vp,
			Compact:         compact,
		}
	}

	bp := staticBreakpoint(viewportWidth)
	mc := bp.normal
	if compact {
		mc = bp.compact
	}
	vp := viewportWidth
	if !validWidth(vp) {
		vp = bp.container
	}
	return types.ResponsiveConstants{
		ContainerWidth:  bp.container,
		CharWidth:       mc.charWidth,
		BasePadding:     mc.basePadding,
		WeekBoxMinWidth: mc.weekBoxMinWidth,
		ViewportWidth:   vp,
		Compact:         compact,
		Breakpoint:      bp.name,
	}
}

// dynamicConstants picks the constant rung for a measured width. The rung
// boundaries match the static breakpoint boundaries so the two systems agree
// at the seams.
func dynamicConstants(compact bool, width float64) modeConstants {
	bp := staticBreakpoint(width)
	if compact {
		return bp.compact
	}
	return bp.normal
}

// staticBreakpoint selects the breakpoint for a viewport width. With no
// usable width, desktop is the default.
func staticBreakpoint(viewportWidth float64) breakpoint {
	switch {
	case !validWidth(viewportWidth):
		return breakpoints[3]
	case viewportWidth < 480:
		return breakpoints[0]
	case viewportWidth <= 768:
		return breakpoints[1]
	case viewportWidth < 1024:
		return breakpoints[2]
	case viewportWidth < 1400:
		return breakpoints[3]
	case viewportWidth < 1800:
		return breakpoints[4]
	default:
		return breakpoints[5]
	}
}

// validWidth reports whether w is a finite positive pixel width.
func validWidth(w float64) bool {
	return w > 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
