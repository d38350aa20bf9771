package contract

import (
	"fmt"
	"os"

	"github.com/crawlscore/crawlscore/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	GoodColor   = color.New(color.FgGreen, color.Bold) // passing sites
	MediumColor = color.New(color.FgYellow)            // standard caution, not bold
	BadColor    = color.New(color.FgRed, color.Bold)   // failing sites
)

// GetPlainStatusLabel returns the plain text status label. This is the
// form used for CSV, JSON and file-bound table printing.
func GetPlainStatusLabel(status schema.Status) string {
	return string(status)
}

// GetColorStatusLabel returns a colored status label for console output.
func GetColorStatusLabel(status schema.Status) string {
	switch status {
	case schema.GoodStatus:
		return GoodColor.Sprint(string(status))
	case schema.MediumStatus:
		return MediumColor.Sprint(string(status))
	default:
		return BadColor.Sprint(string(status))
	}
}

// StatusLabel picks the colored or plain label based on configuration.
func StatusLabel(status schema.Status, colored bool) string {
	if colored {
		return GetColorStatusLabel(status)
	}
	return GetPlainStatusLabel(status)
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens a path for table display, keeping the tail, which
// carries the file name.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= 3 || len(path) <= maxWidth {
		return path
	}
	return "..." + path[len(path)-maxWidth+3:]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
