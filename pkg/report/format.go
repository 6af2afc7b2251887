// pkg/report/format.go
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/docker/go-units"
)

// Result is the part of a run result shared by every summary
type Result interface {
	GetFilesTotal() int
	GetFilesProcessed() int
	GetPathsSkipped() int
	GetTotalBytes() uint64
	GetDuration() time.Duration
	GetErrors() []error
}

// FormatSummary formats the common part of a result into a human-readable string
func FormatSummary(result Result) string {
	var sb strings.Builder

	errors := result.GetErrors()
	if len(errors) > 0 {
		fmt.Fprintf(&sb, "Completed with %d errors:\n", len(errors))
		for _, e := range errors {
			fmt.Fprintf(&sb, "  - %v\n", e)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Duration:        %d ms\n", result.GetDuration().Milliseconds())
	fmt.Fprintf(&sb, "  Files processed: %d / %d\n", result.GetFilesProcessed(), result.GetFilesTotal())
	fmt.Fprintf(&sb, "  Paths skipped:   %d\n", result.GetPathsSkipped())
	fmt.Fprintf(&sb, "  Total bytes:     %d (%s)\n", result.GetTotalBytes(), FormatSize(result.GetTotalBytes()))

	return sb.String()
}

// FormatSize formats bytes into a human-readable binary size ("1.5MiB")
func FormatSize(bytes uint64) string {
	return units.BytesSize(float64(bytes))
}

// FormatRate formats a bytes-per-second rate
func FormatRate(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return "-"
	}
	return units.BytesSize(bytesPerSec) + "/s"
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
