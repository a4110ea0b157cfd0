package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/mateuslg/flightmart/internal/contract"
)

// GetMaxTableKeyWidth calculates the maximum width for surrogate keys in table
// output based on terminal width and table configuration.
func GetMaxTableKeyWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns: rank, dates, route, fares, change,
	// seats, plus borders and padding.
	baseWidth := 72

	if cfg.WithSegments {
		baseWidth += 14 // Segment count column with formatting
	}

	// Calculate available space for the key
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable key width
		return 12
	}
	if available > 60 {
		// Maximum key width to prevent overly long keys
		return 60
	}
	return available
}
