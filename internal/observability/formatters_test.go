package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/lifegrid/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintEventMapping(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	mapping := types.EventMapping{
		"2004-09-05": {
			{Headline: "Started school", Source: types.SourcePersonal, Milestone: true},
		},
		"2008-11-04": {
			{Headline: "Election night", Source: types.SourceWorld},
		},
	}

	p.PrintEventMapping(mapping)
	output := buf.String()

	assert.Contains(t, output, "MERGED EVENTS")
	assert.Contains(t, output, "2004-09-05")
	assert.Contains(t, output, "Started school")
	assert.Contains(t, output, "1 milestones")
	assert.Contains(t, output, "personal")
	assert.Contains(t, output, "world")
}

func TestPrintEventMapping_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEventMapping(types.EventMapping{})

	assert.Empty(t, buf.String())
}

func TestPrintConstants(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConstants(types.ResponsiveConstants{
		ContainerWidth: 931,
		ViewportWidth:  900,
		CharWidth:      6.5,
		BasePadding:    3,
		Breakpoint:     "tablet",
	})
	output := buf.String()

	assert.Contains(t, output, "LAYOUT CONSTANTS")
	assert.Contains(t, output, "tablet")
	assert.Contains(t, output, "931.0px")
	assert.Contains(t, output, "normal")
}

func TestPrintConstants_MeasuredCompact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConstants(types.ResponsiveConstants{
		ContainerWidth: 380,
		ViewportWidth:  400,
		CharWidth:      4.5,
		BasePadding:    1.5,
		Compact:        true,
	})
	output := buf.String()

	assert.Contains(t, output, "(measured container)")
	assert.Contains(t, output, "compact")
}

func TestPrintGridSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	boxes := []types.GridBox{
		{Kind: types.BoxBirthday, Label: "Age 1"},
		{Kind: types.BoxEvent, Label: "Moved house"},
		{Kind: types.BoxWeek},
		{Kind: types.BoxWeek},
	}
	rows := []types.Row{boxes[:2], boxes[2:]}
	colorMap := map[string]string{
		"2004-09-05": "#ff9800",
		"2010-06-12": "#4caf50",
	}

	p.PrintGridSummary(boxes, rows, colorMap)
	output := buf.String()

	assert.Contains(t, output, "GRID SUMMARY")
	assert.Contains(t, output, "4 (1 events, 1 birthdays, 2 weeks)")
	assert.Contains(t, output, "Rows:      2")
	assert.Contains(t, output, "2004-09-05  #ff9800")
}

func TestPrintGridSummary_NoColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGridSummary(nil, nil, nil)
	output := buf.String()

	assert.Contains(t, output, "GRID SUMMARY")
	assert.Contains(t, output, "Colored:   0 dates")
}
