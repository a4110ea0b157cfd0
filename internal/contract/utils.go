package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mateuslg/flightmart/schema"
)

// Color variables for console output.
var (
	HigherColor = color.New(color.FgRed, color.Bold) // fare climbed since last look
	LowerColor  = color.New(color.FgGreen)           // fare dropped since last look
	SameColor   = color.New(color.FgYellow)          // fare held steady
	NAColor     = color.New(color.FgCyan)            // first observation, nothing to compare
)

// GetPlainChangeLabel returns the plain text label for a price change
// classification. This is the core logic used for CSV and JSON printing.
func GetPlainChangeLabel(change schema.PriceChange) string {
	return string(change)
}

// GetColorChangeLabel returns a colored label for console table output.
func GetColorChangeLabel(change schema.PriceChange) string {
	text := GetPlainChangeLabel(change)
	switch change {
	case schema.PriceChangeHigher:
		return HigherColor.Sprint(text)
	case schema.PriceChangeLower:
		return LowerColor.Sprint(text)
	case schema.PriceChangeSame:
		return SameColor.Sprint(text)
	default:
		return NAColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetWarehouseDBFilePath returns the path to the default SQLite warehouse file.
func GetWarehouseDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".flightmart.db"
	}
	return filepath.Join(homeDir, ".flightmart.db")
}

// TruncateKey shortens a surrogate key for table display, keeping the leading
// characters which carry the leg identifier.
func TruncateKey(key string, maxWidth int) string {
	if maxWidth <= 0 || len(key) <= maxWidth {
		return key
	}
	if maxWidth <= 3 {
		return key[:maxWidth]
	}
	return key[:maxWidth-3] + "..."
}
