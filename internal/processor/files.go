package processor

import (
	"os"
	"path/filepath"
	"time"
)

// FileInfo holds file metadata for display.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// statFile returns display metadata for path. A missing path yields the
// zero FileInfo.
func statFile(path string) FileInfo {
	if path == "" {
		return FileInfo{}
	}
	fi := FileInfo{Path: path, Name: filepath.Base(path)}
	if info, err := os.Stat(path); err == nil {
		fi.Size = info.Size()
		fi.ModTime = info.ModTime()
	}
	return fi
}
