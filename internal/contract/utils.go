package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archdrift/archdrift/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // standard danger
	HighColor     = color.New(color.FgMagenta, color.Bold) // strong, distinct warning
	MediumColor   = color.New(color.FgYellow)              // standard caution, not bold
	LowColor      = color.New(color.FgCyan)                // informational / low-priority signal
	GoodColor     = color.New(color.FgGreen)               // healthy / improving signal
)

// GetPlainSeverityLabel returns a plain text label for a severity.
func GetPlainSeverityLabel(s schema.Severity) string {
	switch s {
	case schema.SeverityCritical:
		return "Critical"
	case schema.SeverityHigh:
		return "High"
	case schema.SeverityMedium:
		return "Medium"
	case schema.SeverityLow:
		return "Low"
	default:
		return "None"
	}
}

// GetColorSeverityLabel returns a colored severity label for table output.
// It uses GetPlainSeverityLabel to determine the string, then applies the
// appropriate color.
func GetColorSeverityLabel(s schema.Severity) string {
	text := GetPlainSeverityLabel(s)
	switch s {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(text)
	case schema.SeverityHigh:
		return HighColor.Sprint(text)
	case schema.SeverityMedium:
		return MediumColor.Sprint(text)
	case schema.SeverityLow:
		return LowColor.Sprint(text)
	default:
		return GoodColor.Sprint(text)
	}
}

// GetPlainTrendLabel returns a plain text label for a trend.
func GetPlainTrendLabel(t schema.Trend) string {
	switch t {
	case schema.TrendImproving:
		return "Improving"
	case schema.TrendDegrading:
		return "Degrading"
	default:
		return "Stable"
	}
}

// GetColorTrendLabel returns a colored trend label for table output.
func GetColorTrendLabel(t schema.Trend) string {
	text := GetPlainTrendLabel(t)
	switch t {
	case schema.TrendImproving:
		return GoodColor.Sprint(text)
	case schema.TrendDegrading:
		return CriticalColor.Sprint(text)
	default:
		return MediumColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LoadJSONFile reads and decodes one JSON document into T.
func LoadJSONFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &out, nil
}

// GetBaselineDBFilePath returns the path to the SQLite DB file for baseline storage.
func GetBaselineDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".archdrift_baselines.db"
	}
	return filepath.Join(homeDir, ".archdrift_baselines.db")
}

// TruncateName truncates a component name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// LogFatal prints an error to stderr and exits.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn prints a warning to stderr without aborting the run.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
