package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/lifegrid/internal/config"
	"github.com/jonathan/lifegrid/internal/events"
	"github.com/jonathan/lifegrid/internal/pipeline"
	"github.com/jonathan/lifegrid/internal/rendering"
	"github.com/jonathan/lifegrid/internal/types"
	"github.com/spf13/cobra"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Build a life grid from a birth date and event calendars",
	Long: `Merges the enabled event calendars, walks the weeks from the birth date, assigns milestone colors and packs the boxes into rows, then writes the grid as JSON or HTML.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath        string
	genBirthDate         string
	genStartYear         int
	genEndYear           int
	genPersonal          string
	genWorld             string
	genPresident         string
	genIncludeWorld      bool
	genIncludePresident  bool
	genShowPersonalDates bool
	genCompact           bool
	genMeasuredWidth     float64
	genViewportWidth     float64
	genPalette           []string
	genFormat            string
	genTemplate          string
	genOutput            string
	genVerbose           bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genBirthDate, "birth-date", "b", "", "Birth date (YYYY-MM-DD)")
	generateCommand.Flags().IntVar(&genStartYear, "start-year", 0, "First year to walk (defaults to the birth year)")
	generateCommand.Flags().IntVar(&genEndYear, "end-year", 0, "Last year to walk (defaults to the current year)")
	generateCommand.Flags().StringVarP(&genPersonal, "personal", "p", "", "Path to personal events JSON")
	generateCommand.Flags().StringVar(&genWorld, "world", "", "Path to world events JSON")
	generateCommand.Flags().StringVar(&genPresident, "president", "", "Path to presidency events JSON")
	generateCommand.Flags().BoolVar(&genIncludeWorld, "include-world", false, "Merge in world events")
	generateCommand.Flags().BoolVar(&genIncludePresident, "include-president", false, "Merge in presidency events")
	generateCommand.Flags().BoolVar(&genShowPersonalDates, "show-personal-dates", false, "Expose day-of-month in personal event tooltips")
	generateCommand.Flags().BoolVar(&genCompact, "compact", false, "Emoji-only compact rendering")
	generateCommand.Flags().Float64Var(&genMeasuredWidth, "measured-width", 0, "Measured container width in px (0 uses the static breakpoint table)")
	generateCommand.Flags().Float64Var(&genViewportWidth, "viewport-width", 0, "Viewport width in px (0 defaults to desktop)")
	generateCommand.Flags().StringSliceVar(&genPalette, "palette", nil, "Milestone color sequence as #rrggbb values (generated if omitted)")
	generateCommand.Flags().StringVarP(&genFormat, "format", "f", "", "Output format: json or html")
	generateCommand.Flags().StringVarP(&genTemplate, "template", "t", "", "Path to an HTML template override")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output file path (defaults to stdout)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("birth-date") {
		cfg.BirthDate = genBirthDate
	}
	if cmd.Flags().Changed("start-year") {
		cfg.StartYear = genStartYear
	}
	if cmd.Flags().Changed("end-year") {
		cfg.EndYear = genEndYear
	}
	if cmd.Flags().Changed("personal") {
		cfg.PersonalEvents = genPersonal
	}
	if cmd.Flags().Changed("world") {
		cfg.WorldEvents = genWorld
	}
	if cmd.Flags().Changed("president") {
		cfg.PresidentEvents = genPresident
	}
	if cmd.Flags().Changed("include-world") {
		cfg.IncludeWorld = genIncludeWorld
	}
	if cmd.Flags().Changed("include-president") {
		cfg.IncludePresident = genIncludePresident
	}
	if cmd.Flags().Changed("show-personal-dates") {
		cfg.ShowPersonalDates = genShowPersonalDates
	}
	if cmd.Flags().Changed("compact") {
		cfg.Compact = genCompact
	}
	if cmd.Flags().Changed("measured-width") {
		cfg.MeasuredWidth = genMeasuredWidth
	}
	if cmd.Flags().Changed("viewport-width") {
		cfg.ViewportWidth = genViewportWidth
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = genPalette
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = genFormat
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = genTemplate
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = genOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	return runGenerate(cmd.Context(), cfg)
}

// runGenerate executes the generate flow for a fully merged configuration.
func runGenerate(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.BirthDate == "" {
		return fmt.Errorf("--birth-date is required (via flag or config)")
	}

	personal, err := loadMappingIfSet(cfg.PersonalEvents)
	if err != nil {
		return err
	}
	world, err := loadMappingIfSet(cfg.WorldEvents)
	if err != nil {
		return err
	}
	president, err := loadMappingIfSet(cfg.PresidentEvents)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		BirthDate:         cfg.BirthDate,
		StartYear:         cfg.StartYear,
		EndYear:           cfg.EndYear,
		Personal:          personal,
		World:             world,
		President:         president,
		IncludeWorld:      cfg.IncludeWorld,
		IncludePresident:  cfg.IncludePresident,
		ShowPersonalDates: cfg.ShowPersonalDates,
		Compact:           cfg.Compact,
		MeasuredWidth:     cfg.MeasuredWidth,
		ViewportWidth:     cfg.ViewportWidth,
		Palette:           cfg.Palette,
		Verbose:           cfg.Verbose,
	})
	if err != nil {
		return err
	}

	output, err := formatResult(result, cfg)
	if err != nil {
		return err
	}

	return writeOutput(output, cfg.Output)
}

// loadMappingIfSet loads and validates an event file, or returns an empty
// mapping for an empty path.
func loadMappingIfSet(path string) (types.EventMapping, error) {
	if path == "" {
		return types.EventMapping{}, nil
	}
	return events.LoadMapping(path)
}

// formatResult renders the pipeline result in the configured output format.
func formatResult(result *pipeline.Result, cfg config.Config) ([]byte, error) {
	switch cfg.Format {
	case "html":
		title := fmt.Sprintf("Life in weeks since %s", cfg.BirthDate)
		html, err := rendering.RenderHTML(result.Rows, result.Colors, result.Constants, title, cfg.Template)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	default:
		return json.MarshalIndent(result, "", "  ")
	}
}

// writeOutput writes the rendered grid to the output file, or stdout when no
// path is configured.
func writeOutput(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
