// countyscope-view is a terminal dashboard for exploring county health statistics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/ijuttt/countyscope/internal/app"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/processor"
	"github.com/ijuttt/countyscope/internal/ui"
	"github.com/ijuttt/countyscope/internal/ui/bubbletea"
	"github.com/ijuttt/countyscope/internal/ui/gocui"
)

func main() {
	opts := config.DefaultOptions()
	flag.StringVar(&opts.DataPath, "data", "", "county statistics CSV (default: newest "+config.DataFilePattern+")")
	flag.StringVar(&opts.GeoPath, "geo", "", "county TopoJSON or GeoJSON (default: newest "+config.GeoFilePattern+")")
	flag.StringVar(&opts.GeoObject, "geo-object", opts.GeoObject, "TopoJSON object holding the counties")
	flag.StringVar(&opts.Attribute, "attr", opts.Attribute, "initial x attribute")
	flag.StringVar(&opts.UI, "ui", opts.UI, "front end: bubbletea or gocui")
	flag.StringVar(&opts.Delimiter, "delim", opts.Delimiter, "CSV field delimiter")
	flag.StringVar(&opts.Missing, "missing", "", "extra missing-value tokens, comma separated")
	flag.StringVar(&opts.LogPath, "log", "", "write logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error")
	flag.Usage = printUsage
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "countyscope-view: %v\n", err)
		os.Exit(2)
	}
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "countyscope-view: stdout is not a terminal; use countyscope-render for files")
		os.Exit(2)
	}

	// The TUI owns the screen, so logs go to a file or nowhere.
	logging.SetLevel(opts.LogLevel)
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, config.AppName)
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}

	var err error
	if opts.UI == "gocui" {
		err = runGocui(opts)
	} else {
		p := tea.NewProgram(
			bubbletea.NewApp(opts),
			tea.WithAltScreen(),      // Use alternate screen buffer
			tea.WithMouseAllMotion(), // Hover tooltips need motion without a button
		)
		_, err = p.Run()
	}
	if err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

// runGocui loads synchronously and hands the state to the gocui dashboard.
func runGocui(opts config.Options) error {
	res := processor.Load(opts)
	if res.Err != nil {
		return res.Err
	}
	state, err := app.NewState(res.Dataset, res.Features, model.AttributeKey(opts.Attribute))
	if err != nil {
		return err
	}

	adapter, err := gocui.New()
	if err != nil {
		return err
	}
	var u ui.UI = adapter
	defer u.Close()
	return u.Run(state)
}

// printUsage displays usage information.
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Countyscope Viewer - brush a scatterplot of county health statistics")
	fmt.Fprintln(os.Stderr, "and watch the histograms and the choropleth follow.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Auto-discovery paths (searched in order):")
	for i, p := range config.GetDataPaths() {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintf(os.Stderr, "  %s  Override the data directory\n", config.EnvDataDir)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keybindings:")
	fmt.Fprintln(os.Stderr, "  mouse drag   Brush the scatterplot (click to clear)")
	fmt.Fprintln(os.Stderr, "  b            Keyboard brush: arrows move, space anchors, enter applies")
	fmt.Fprintln(os.Stderr, "  x/Esc        Clear the brush")
	fmt.Fprintln(os.Stderr, "  a            Choose the x attribute")
	fmt.Fprintln(os.Stderr, "  n/Tab        Next attribute")
	fmt.Fprintln(os.Stderr, "  r            Reload the input files")
	fmt.Fprintln(os.Stderr, "  ?            Toggle full help")
	fmt.Fprintln(os.Stderr, "  q            Quit")
}
