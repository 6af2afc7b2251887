// pkg/chunkdir/progress.go
package chunkdir

import (
	"fmt"
	"strings"

	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-quickcdc/pkg/report"
)

// ProgressCallback is called for various progress events
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type         EventType
	FilePath     string
	Current      int64  // Bytes chunked so far in the file, files done for EventComplete
	Total        int64  // Bytes to chunk in the file, files total for EventStart/EventComplete
	CurrentBytes uint64 // Bytes chunked over the whole run
	TotalBytes   uint64 // On-disk size of the file, of all files for EventStart
	Chunks       uint64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileStart
	EventFileProgress
	EventFileComplete
	EventComplete
	EventError
)

// progressStep is the number of chunked bytes between two EventFileProgress
const progressStep = 4 << 20

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after Run)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := report.ProgressBarCallback()

	callback := func(event ProgressEvent) {
		genericCb(report.ProgressEvent{
			Type:         report.EventType(event.Type),
			FilePath:     event.FilePath,
			Current:      event.Current,
			Total:        event.Total,
			CurrentBytes: event.CurrentBytes,
			TotalBytes:   event.TotalBytes,
			Chunks:       event.Chunks,
		})
	}

	return callback, progress
}

// FormatSummary formats a run result into a human-readable summary string
func FormatSummary(result *Result) string {
	var sb strings.Builder

	sb.WriteString(report.FormatSummary(result))

	fmt.Fprintf(&sb, "  Chunks:          %d\n", result.TotalChunks)
	if result.TotalChunks > 0 {
		fmt.Fprintf(&sb, "  Average chunk:   %d bytes\n", result.AverageChunkSize())
		fmt.Fprintf(&sb, "  Smallest chunk:  %d bytes\n", result.MinChunk)
		fmt.Fprintf(&sb, "  Largest chunk:   %d bytes\n", result.MaxChunk)
	}
	fmt.Fprintf(&sb, "  Throughput:      %s\n", report.FormatRate(result.Throughput()))

	sb.WriteString("\nParameters:\n")
	fmt.Fprintf(&sb, "  Algorithm:       %s\n", result.Algorithm)
	fmt.Fprintf(&sb, "  Target size:     %d bytes\n", result.TargetSize)
	fmt.Fprintf(&sb, "  Max size:        %d bytes\n", result.MaxSize)
	fmt.Fprintf(&sb, "  Salt:            0x%016x\n", result.Salt)

	if d := result.Dedup; d != nil && d.TotalChunks > 0 {
		sb.WriteString("\nDeduplication:\n")
		fmt.Fprintf(&sb, "  Unique chunks:   %d\n", d.UniqueChunks)
		fmt.Fprintf(&sb, "  Repeated chunks: %d\n", d.DuplicateChunks)
		fmt.Fprintf(&sb, "  Dedup ratio:     %.1f%%\n", d.DedupRatio())
		fmt.Fprintf(&sb, "  Bytes repeated:  %s (%.1f%%)\n", report.FormatSize(d.DuplicateBytes), d.SavedRatio())
		if d.Evictions > 0 {
			fmt.Fprintf(&sb, "  Evictions:       %d (LRU index, figures are a lower bound)\n", d.Evictions)
		}
	}

	if result.TotalChunks > 0 {
		sb.WriteString("\nChunk sizes:\n")
		sb.WriteString(report.FormatHistogram(&result.Histogram, 40))
	}

	return sb.String()
}
