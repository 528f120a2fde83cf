package layout

import (
	"unicode/utf8"

	"github.com/jonathan/lifegrid/internal/types"
)

// boxChrome is the fixed per-box pixel overhead: two 1px borders plus the
// 1px gap to the neighbor.
const boxChrome = 2 + 1

// BoxWidth returns the pixel width of one box under the resolved constants.
// Labeled boxes scale with their label; empty week cells use fixed widths so
// they line up on a uniform visual grid, keyed to the viewport rather than
// the container.
func BoxWidth(box types.GridBox, c types.ResponsiveConstants) float64 {
	if box.Kind == types.BoxWeek {
		if c.Compact {
			return compactEmptyCellWidth
		}
		if c.ViewportWidth <= narrowViewportMax {
			return emptyCellWidthNarrow
		}
		return emptyCellWidthWide
	}

	width := float64(utf8.RuneCountInString(box.Label))*c.CharWidth + 2*c.BasePadding + boxChrome
	if width < c.WeekBoxMinWidth {
		width = c.WeekBoxMinWidth
	}
	return width
}

// PackRows partitions the box sequence into rows with a single greedy
// forward pass and no backtracking. A row closes when appending the next box
// would make its width reach or exceed the effective container width; the
// box then opens the next row, so a box wider than the container alone still
// lands in a row of its own. Row order and intra-row order are exactly the
// input order.
func PackRows(boxes []types.GridBox, c types.ResponsiveConstants) []types.Row {
	rows := make([]types.Row, 0)
	var row types.Row
	rowWidth := 0.0

	for _, box := range boxes {
		w := BoxWidth(box, c)
		if len(row) > 0 && rowWidth+w >= c.ContainerWidth {
			rows = append(rows, row)
			row = nil
			rowWidth = 0
		}
		row = append(row, box)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows
}
