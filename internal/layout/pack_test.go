package layout

import (
	"strings"
	"testing"

	"github.com/jonathan/lifegrid/internal/types"
)

func labeledBox(label string) types.GridBox {
	return types.GridBox{Kind: types.BoxEvent, Label: label}
}

func TestBoxWidth_LabelFormula(t *testing.T) {
	c := types.ResponsiveConstants{CharWidth: 6, BasePadding: 3, ViewportWidth: 1000}
	box := labeledBox(strings.Repeat("x", 10))

	// 10*6 + 2*3 + 2 (border) + 1 (gap) = 69
	if got := BoxWidth(box, c); got != 69 {
		t.Errorf("box width = %v, want 69", got)
	}
}

func TestBoxWidth_EmptyWeekCellIgnoresLabelModel(t *testing.T) {
	week := types.GridBox{Kind: types.BoxWeek}

	compact := types.ResponsiveConstants{Compact: true, CharWidth: 6, BasePadding: 3, ViewportWidth: 2000}
	if got := BoxWidth(week, compact); got != compactEmptyCellWidth {
		t.Errorf("compact empty cell = %v, want %v", got, compactEmptyCellWidth)
	}

	narrow := types.ResponsiveConstants{CharWidth: 6, BasePadding: 3, ViewportWidth: 600}
	if got := BoxWidth(week, narrow); got != 18 {
		t.Errorf("narrow-viewport empty cell = %v, want 18", got)
	}

	wide := types.ResponsiveConstants{CharWidth: 6, BasePadding: 3, ViewportWidth: 1200}
	if got := BoxWidth(week, wide); got != 26 {
		t.Errorf("wide-viewport empty cell = %v, want 26", got)
	}
}

func TestBoxWidth_MinWidthFloor(t *testing.T) {
	c := types.ResponsiveConstants{CharWidth: 6, BasePadding: 3, WeekBoxMinWidth: 20}
	if got := BoxWidth(labeledBox("x"), c); got != 20 {
		t.Errorf("short label width = %v, want the %v floor", got, c.WeekBoxMinWidth)
	}
}

func TestPackRows_GreedyBreakAtEffectiveWidth(t *testing.T) {
	// 69px boxes into a 380px effective container: 5*69=345 fits,
	// 345+69=414 >= 380 breaks.
	c := types.ResponsiveConstants{ContainerWidth: 380, CharWidth: 6, BasePadding: 3, ViewportWidth: 1000}
	boxes := make([]types.GridBox, 12)
	for i := range boxes {
		boxes[i] = labeledBox(strings.Repeat("x", 10))
	}

	rows := PackRows(boxes, c)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 5 || len(rows[1]) != 5 || len(rows[2]) != 2 {
		t.Errorf("row sizes = %d/%d/%d, want 5/5/2", len(rows[0]), len(rows[1]), len(rows[2]))
	}
}

func TestPackRows_ExactFitBreaks(t *testing.T) {
	// Reaching the container width exactly also closes the row.
	c := types.ResponsiveConstants{ContainerWidth: 138, CharWidth: 6, BasePadding: 3, ViewportWidth: 1000}
	boxes := []types.GridBox{
		labeledBox(strings.Repeat("x", 10)),
		labeledBox(strings.Repeat("x", 10)),
	}

	rows := PackRows(boxes, c)
	if len(rows) != 2 {
		t.Errorf("expected 2 rows at 69+69 >= 138, got %d", len(rows))
	}
}

func TestPackRows_OversizedBoxGetsOwnRow(t *testing.T) {
	c := types.ResponsiveConstants{ContainerWidth: 50, CharWidth: 6, BasePadding: 3, ViewportWidth: 1000}
	boxes := []types.GridBox{
		labeledBox(strings.Repeat("x", 30)), // 189px, wider than the container
		labeledBox("ok"),
	}

	rows := PackRows(boxes, c)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 1 {
		t.Errorf("oversized box must sit alone in its row, row has %d boxes", len(rows[0]))
	}
}

func TestPackRows_ConcatenationReproducesInput(t *testing.T) {
	c := ResolveConstants(false, 300, 800)
	boxes := []types.GridBox{
		labeledBox("Age 1"),
		{Kind: types.BoxWeek, Date: "2001-01-21"},
		labeledBox("🚀 Launched"),
		{Kind: types.BoxWeek, Date: "2001-02-04"},
		labeledBox("Moved house"),
	}

	rows := PackRows(boxes, c)
	var flattened []types.GridBox
	for _, row := range rows {
		if len(row) == 0 {
			t.Fatal("rows must be non-empty")
		}
		flattened = append(flattened, row...)
	}
	if len(flattened) != len(boxes) {
		t.Fatalf("flattened %d boxes, want %d", len(flattened), len(boxes))
	}
	for i := range boxes {
		if flattened[i].Label != boxes[i].Label || flattened[i].Date != boxes[i].Date {
			t.Errorf("box %d reordered or altered", i)
		}
	}
}

func TestPackRows_EmptyInput(t *testing.T) {
	rows := PackRows(nil, ResolveConstants(false, 300, 800))
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
