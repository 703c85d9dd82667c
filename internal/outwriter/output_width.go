// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/archdrift/archdrift/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for component names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
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

	// Reserve space for the fixed numeric columns with table formatting:
	// Rank + Ca + Ce + Instability + Distance + Risk + Strength + Hotspot
	baseWidth := 60

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	// Calculate available space for the component name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 60 {
		// Maximum name width to prevent overly long names
		return 60
	}
	return available
}
