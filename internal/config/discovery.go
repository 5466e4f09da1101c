package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrNoDataFile is returned when discovery finds no matching file.
var ErrNoDataFile = errors.New("no matching input file")

// -----------------------------------------------------------------------------
// Input File Discovery
// -----------------------------------------------------------------------------

// DiscoverLatest searches the given directories for the most recent file
// matching pattern. Directories that do not exist are skipped.
func DiscoverLatest(dirs []string, pattern string) (string, error) {
	var candidates []fileCandidate

	for _, dir := range dirs {
		files, err := findFiles(dir, pattern)
		if err != nil {
			// Directory might not exist; continue searching
			continue
		}
		candidates = append(candidates, files...)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s in %v", ErrNoDataFile, pattern, dirs)
	}

	// Newest first
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	return candidates[0].path, nil
}

// DiscoverDataFile returns the newest health statistics table in the data paths.
func DiscoverDataFile() (string, error) {
	return DiscoverLatest(GetDataPaths(), DataFilePattern)
}

// DiscoverGeoFile returns the newest county boundary file in the data paths.
func DiscoverGeoFile() (string, error) {
	return DiscoverLatest(GetDataPaths(), GeoFilePattern)
}

// fileCandidate represents a discovered file with its metadata.
type fileCandidate struct {
	path    string
	modTime time.Time
}

// findFiles returns the regular files in dir whose base name matches pattern.
func findFiles(dir, pattern string) ([]fileCandidate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []fileCandidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}

		candidates = append(candidates, fileCandidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: fileInfo.ModTime(),
		})
	}

	return candidates, nil
}
