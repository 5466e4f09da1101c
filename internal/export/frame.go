package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/view"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DashboardFile is the combined document written alongside SVG panels.
const DashboardFile = "dashboard.svg"

var ErrUnknownFormat = errors.New("unknown export format")

// WriteFrame writes one file per panel into dir, named after the panel.
// SVG output also gets the combined dashboard document. It returns the
// written paths.
func WriteFrame(dir string, f *view.Frame, format string) ([]string, error) {
	var write func(io.Writer, *view.Panel) error
	switch format {
	case FormatSVG:
		write = WritePanelSVG
	case FormatPNG:
		write = WritePanelPNG
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	for _, p := range f.Panels {
		path := filepath.Join(dir, p.Name+"."+format)
		panel := p
		if err := writeFile(path, func(w io.Writer) error { return write(w, panel) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if format == FormatSVG {
		path := filepath.Join(dir, DashboardFile)
		if err := writeFile(path, func(w io.Writer) error { return WriteSVG(w, f) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	logging.Infof("export: wrote %d files to %s", len(paths), dir)
	return paths, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := fn(bw); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
