// countyscope-render writes the dashboard panels for one attribute and
// brush to SVG or PNG files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ijuttt/countyscope/internal/app"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/export"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/processor"
	"github.com/ijuttt/countyscope/internal/view"
)

func main() {
	opts := config.DefaultOptions()
	var brush, format, out string
	flag.StringVar(&opts.DataPath, "data", "", "county statistics CSV (default: newest "+config.DataFilePattern+")")
	flag.StringVar(&opts.GeoPath, "geo", "", "county TopoJSON or GeoJSON (default: newest "+config.GeoFilePattern+")")
	flag.StringVar(&opts.GeoObject, "geo-object", opts.GeoObject, "TopoJSON object holding the counties")
	flag.StringVar(&opts.Attribute, "attr", opts.Attribute, "x attribute")
	flag.StringVar(&opts.Delimiter, "delim", opts.Delimiter, "CSV field delimiter")
	flag.StringVar(&opts.Missing, "missing", "", "extra missing-value tokens, comma separated")
	flag.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error")
	flag.StringVar(&brush, "brush", "", "scatterplot brush in panel pixels: x0,y0,x1,y1")
	flag.StringVar(&format, "format", export.FormatSVG, "output format: svg or png")
	flag.StringVar(&out, "out", ".", "output directory")
	flag.Parse()

	if err := run(opts, brush, format, out); err != nil {
		fmt.Fprintf(os.Stderr, "countyscope-render: %v\n", err)
		os.Exit(1)
	}
}

func run(opts config.Options, brush, format, out string) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	logging.SetLevel(opts.LogLevel)
	logging.SetOutput(os.Stderr)

	rect, err := parseBrush(brush)
	if err != nil {
		return err
	}

	res := processor.Load(opts)
	if res.Err != nil {
		return res.Err
	}
	for _, rej := range res.Dataset.Rejected {
		logging.Debugf("rejected %v", rej)
	}

	state, err := app.NewState(res.Dataset, res.Features, model.AttributeKey(opts.Attribute))
	if err != nil {
		return err
	}
	if rect != nil {
		state.ApplyBrush(rect)
	}

	paths, err := export.WriteFrame(out, state.Frame(), format)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	logging.Infof("%d of %d counties selected", len(state.Filtered()), len(state.Full()))
	return nil
}

var errBadBrush = errors.New("-brush wants four comma separated numbers")

// parseBrush reads "x0,y0,x1,y1". An empty string means no brush.
func parseBrush(s string) (*view.Rect, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w, got %q", errBadBrush, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w, got %q", errBadBrush, s)
		}
		v[i] = f
	}
	return &view.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}
