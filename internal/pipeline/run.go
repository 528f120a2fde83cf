// Package pipeline provides the high-level orchestration for building a life
// grid from a birth date and the merged event calendar.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/lifegrid/internal/calendar"
	"github.com/jonathan/lifegrid/internal/colors"
	"github.com/jonathan/lifegrid/internal/events"
	"github.com/jonathan/lifegrid/internal/layout"
	"github.com/jonathan/lifegrid/internal/observability"
	"github.com/jonathan/lifegrid/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline step names reported through progress events.
const (
	StepMerge  = "merge_events"
	StepWalk   = "calendar_walk"
	StepColors = "assign_colors"
	StepLayout = "pack_rows"
)

// RunOptions holds configuration for one pipeline invocation. Every run is a
// pure function of these inputs; nothing is carried between invocations.
type RunOptions struct {
	BirthDate         string // ISO date, 2006-01-02
	StartYear         int    // defaults to the birth year
	EndYear           int    // defaults to the current year
	Personal          types.EventMapping
	World             types.EventMapping
	President         types.EventMapping
	IncludeWorld      bool
	IncludePresident  bool
	ShowPersonalDates bool
	Compact           bool
	MeasuredWidth     float64  // optional live container measurement, px
	ViewportWidth     float64  // optional viewport width, px
	Palette           []string // optional; generated from milestones if empty
	Verbose           bool
	OnProgress        ProgressCallback
}

// Result is the pipeline output: the chronological box sequence, its
// partition into display rows, and the per-date color map. RunID identifies
// the invocation and is the only non-deterministic field.
type Result struct {
	RunID     uuid.UUID                 `json:"run_id"`
	Boxes     []types.GridBox           `json:"boxes"`
	Rows      []types.Row               `json:"rows"`
	Colors    map[string]string         `json:"colors"`
	Palette   []string                  `json:"palette"`
	Constants types.ResponsiveConstants `json:"constants"`
}

// logPrefix distinguishes the two parallel branches' log output.
type logPrefix string

const (
	prefixColors logPrefix = "[Colors] "
	prefixLayout logPrefix = "[Layout] "
)

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
		})
	}
}

// Run executes the full grid-construction pipeline: merge the event sources,
// walk the calendar into boxes, then assign colors and pack rows. The color
// and layout passes are independent of each other and run as parallel
// branches. A start year after the end year yields an empty grid, not an
// error.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	birth, err := time.Parse("2006-01-02", opts.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q: %w", opts.BirthDate, err)
	}

	startYear := opts.StartYear
	if startYear == 0 {
		startYear = birth.Year()
	}
	endYear := opts.EndYear
	if endYear == 0 {
		endYear = time.Now().UTC().Year()
	}

	fmt.Printf("Step 1/4: Merging event sources...\n")
	merged := events.Merge(opts.Personal, opts.World, opts.President, opts.IncludeWorld, opts.IncludePresident)
	emitProgress(&opts, runID, StepMerge,
		fmt.Sprintf("Merged %d dated entries from enabled sources", len(merged)))

	fmt.Printf("Step 2/4: Walking calendar %d-%d...\n", startYear, endYear)
	walk := calendar.Walk(calendar.WalkOptions{
		BirthDate:         birth,
		StartYear:         startYear,
		EndYear:           endYear,
		Events:            merged,
		Compact:           opts.Compact,
		ShowPersonalDates: opts.ShowPersonalDates,
	})
	emitProgress(&opts, runID, StepWalk,
		fmt.Sprintf("Emitted %d boxes across %d milestone dates", len(walk.Boxes), len(walk.MilestoneDates)))

	palette := opts.Palette
	if len(palette) == 0 {
		palette = colors.GeneratePalette(merged)
	}
	constants := layout.ResolveConstants(opts.Compact, opts.MeasuredWidth, opts.ViewportWidth)

	// Color assignment and row breaking only share the box sequence; run
	// them as parallel branches.
	g, _ := errgroup.WithContext(ctx)

	var colorMap map[string]string
	var rows []types.Row
	var colorMu, rowMu sync.Mutex

	g.Go(func() error {
		fmt.Printf("%sStep 3/4: Assigning milestone colors...\n", prefixColors)
		assigned, err := colors.Assign(walk.Boxes, merged, palette)
		if err != nil {
			return fmt.Errorf("color assignment failed: %w", err)
		}
		colorMu.Lock()
		colorMap = assigned
		colorMu.Unlock()
		emitProgress(&opts, runID, StepColors,
			fmt.Sprintf("Assigned colors to %d dates from a %d-entry palette", len(assigned), len(palette)))
		return nil
	})

	g.Go(func() error {
		fmt.Printf("%sStep 4/4: Packing boxes into rows...\n", prefixLayout)
		packed := layout.PackRows(walk.Boxes, constants)
		rowMu.Lock()
		rows = packed
		rowMu.Unlock()
		emitProgress(&opts, runID, StepLayout,
			fmt.Sprintf("Packed %d boxes into %d rows at %.0fpx", len(walk.Boxes), len(packed), constants.ContainerWidth))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     runID,
		Boxes:     walk.Boxes,
		Rows:      rows,
		Colors:    colorMap,
		Palette:   palette,
		Constants: constants,
	}

	if opts.Verbose {
		printer.PrintGridSummary(result.Boxes, result.Rows, result.Colors)
	}

	fmt.Printf("Done! Grid built with %d rows.\n", len(result.Rows))
	return result, nil
}
