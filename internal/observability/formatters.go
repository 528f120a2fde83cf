// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/lifegrid/internal/types"
)

const (
	// outputBoxWidth is the default width for formatted output boxes
	outputBoxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", outputBoxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", outputBoxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > outputBoxWidth-4 {
			line = line[:outputBoxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", outputBoxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEventMapping outputs a human-readable summary of a merged event mapping.
func (p *Printer) PrintEventMapping(mapping types.EventMapping) {
	if len(mapping) == 0 {
		return
	}

	var sb strings.Builder

	total := 0
	milestones := 0
	bySource := map[types.Source]int{}
	for _, evs := range mapping {
		for _, ev := range evs {
			total++
			bySource[ev.Source]++
			if ev.Milestone {
				milestones++
			}
		}
	}

	sb.WriteString(fmt.Sprintf("Dates:      %d\n", len(mapping)))
	sb.WriteString(fmt.Sprintf("Events:     %d (%d milestones)\n", total, milestones))
	for _, src := range []types.Source{types.SourcePersonal, types.SourceWorld, types.SourcePresident} {
		if bySource[src] > 0 {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", string(src)+":", bySource[src]))
		}
	}
	sb.WriteString("\n")

	dates := mapping.Dates()
	sort.Strings(dates)
	count := min(len(dates), maxItemsToShow)
	for i := 0; i < count; i++ {
		date := dates[i]
		headline := ""
		if len(mapping[date]) > 0 {
			headline = mapping[date][0].Headline
		}
		if len(headline) > 40 {
			headline = headline[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", date, headline))
	}
	if len(dates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more dates\n", len(dates)-maxItemsToShow))
	}

	p.printBox("MERGED EVENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConstants outputs the resolved layout constants.
func (p *Printer) PrintConstants(c types.ResponsiveConstants) {
	var sb strings.Builder

	if c.Breakpoint != "" {
		sb.WriteString(fmt.Sprintf("Breakpoint:   %s\n", c.Breakpoint))
	} else {
		sb.WriteString("Breakpoint:   (measured container)\n")
	}
	sb.WriteString(fmt.Sprintf("Container:    %.1fpx\n", c.ContainerWidth))
	sb.WriteString(fmt.Sprintf("Viewport:     %.0fpx\n", c.ViewportWidth))
	sb.WriteString(fmt.Sprintf("Char width:   %.1fpx\n", c.CharWidth))
	sb.WriteString(fmt.Sprintf("Base padding: %.1fpx\n", c.BasePadding))
	sb.WriteString(fmt.Sprintf("Min box:      %.1fpx\n", c.WeekBoxMinWidth))
	if c.Compact {
		sb.WriteString("Mode:         compact")
	} else {
		sb.WriteString("Mode:         normal")
	}

	p.printBox("LAYOUT CONSTANTS", sb.String())
}

// PrintGridSummary outputs the shape of the finished grid: box counts by
// kind, row statistics, and the first few colored dates.
func (p *Printer) PrintGridSummary(boxes []types.GridBox, rows []types.Row, colorMap map[string]string) {
	var sb strings.Builder

	byKind := map[types.BoxKind]int{}
	for _, box := range boxes {
		byKind[box.Kind]++
	}
	sb.WriteString(fmt.Sprintf("Boxes:     %d (%d events, %d birthdays, %d weeks)\n",
		len(boxes), byKind[types.BoxEvent], byKind[types.BoxBirthday], byKind[types.BoxWeek]))

	sb.WriteString(fmt.Sprintf("Rows:      %d\n", len(rows)))
	if len(rows) > 0 {
		longest := 0
		for _, row := range rows {
			if len(row) > longest {
				longest = len(row)
			}
		}
		sb.WriteString(fmt.Sprintf("Widest:    %d boxes\n", longest))
	}
	sb.WriteString(fmt.Sprintf("Colored:   %d dates\n", len(colorMap)))

	if len(colorMap) > 0 {
		sb.WriteString("\n")
		dates := make([]string, 0, len(colorMap))
		for date := range colorMap {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		count := min(len(dates), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", dates[i], colorMap[dates[i]]))
		}
		if len(dates) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more dates\n", len(dates)-maxItemsToShow))
		}
	}

	p.printBox("GRID SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
