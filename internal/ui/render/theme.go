package render

// ANSI color codes for terminal output. gocui only understands the basic
// eight colors, so no 256-color or true-color codes are used here.
const (
	Reset  = "\x1b[0m"
	Red    = "\x1b[0;31m"
	Green  = "\x1b[0;32m"
	Yellow = "\x1b[0;33m"
	Blue   = "\x1b[0;34m"
	Cyan   = "\x1b[0;36m"
	Bold   = "\x1b[1m"
	Dim    = "\x1b[2m"
)
