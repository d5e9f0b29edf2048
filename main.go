package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ftracker/internal/config"
	"ftracker/internal/service"
	"ftracker/internal/tui"
	"ftracker/internal/workout"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("ftracker", flag.ContinueOnError)
	useTUI := flags.Bool("tui", false, "show the report in the interactive viewer")
	initConfig := flags.Bool("init", false, "write an example config file and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: ftracker [-tui] [CODE VALUE...]\n\n")
		fmt.Fprintf(flags.Output(), "Without a package the configured (or sample) packages are reported.\n")
		fmt.Fprintf(flags.Output(), "Codes: RUN steps hours kg | WLK steps hours kg cm | SWM strokes hours kg pool_m laps\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *initConfig {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Fprintf(stdout, "Example config written to:\n  %s/config.json\n", configDir)
		return nil
	}

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("config validation failed: %w (edit %s/config.json)", err, configDir)
	}

	packages := cfg.Packages
	if flags.NArg() > 0 {
		p, err := workout.ParsePackage(flags.Args())
		if err != nil {
			return fmt.Errorf("reading package: %w", err)
		}
		packages = []workout.Package{p}
	}

	reportSvc := service.NewReportService(packages)

	if *useTUI || cfg.Display.Output == config.OutputTUI {
		app := tui.NewApp(reportSvc, cfg.Display)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	return printReport(stdout, reportSvc.Report(), flags.NArg() > 0)
}

// printReport writes one line per successful entry. Rejected packages are
// logged and skipped; a package given on the command line fails the run.
func printReport(w io.Writer, entries []service.Entry, single bool) error {
	for _, e := range entries {
		if !e.OK() {
			if single {
				return e.Err
			}
			log.Printf("skipping package %s: %v", e.Package.Code, e.Err)
			continue
		}
		if _, err := fmt.Fprintln(w, e.Line()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
