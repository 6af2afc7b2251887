// pkg/report/progress.go
package report

import (
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressEvent is a progress event independent of the producing package
type ProgressEvent struct {
	Type         EventType
	FilePath     string
	Current      int64
	Total        int64
	CurrentBytes uint64
	TotalBytes   uint64
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

// ProgressBarCallback creates a progress callback that displays one bar per
// file in flight and an overall bar in bytes.
// Returns the callback function and the progress container (call Wait() after the run)
func ProgressBarCallback() (func(ProgressEvent), *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var overallBar *mpb.Bar
	var fileBars sync.Map // map[string]*mpb.Bar

	// The file bar is sized in chunked bytes (decoded size for compressed
	// inputs); the overall bar counts on-disk bytes of finished inputs
	finish := func(event ProgressEvent, failed bool) {
		if bar, ok := fileBars.LoadAndDelete(event.FilePath); ok {
			b := bar.(*mpb.Bar)
			if failed || event.Total <= 0 {
				b.Abort(true)
			} else {
				b.SetCurrent(event.Total)
			}
		}
		if overallBar != nil && event.TotalBytes > 0 {
			overallBar.IncrInt64(int64(event.TotalBytes))
		}
	}

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			overallBar = progress.AddBar(int64(event.TotalBytes),
				mpb.PrependDecorators(
					decor.Name("Total", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.AverageSpeed(decor.SizeB1024(0), "% .1f", decor.WC{W: 14}),
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarPriority(1000), // High priority = bottom
			)

		case EventFileStart:
			if event.Total == 0 {
				return
			}
			shortName := TruncateLeft(event.FilePath, 30)
			bar := progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name(shortName, decor.WC{C: decor.DindentRight | decor.DextraSpace, W: 32}),
				),
				mpb.AppendDecorators(
					decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarRemoveOnComplete(),
			)
			fileBars.Store(event.FilePath, bar)

		case EventFileProgress:
			if bar, ok := fileBars.Load(event.FilePath); ok {
				bar.(*mpb.Bar).SetCurrent(event.Current)
			}

		case EventFileComplete:
			finish(event, false)

		case EventError:
			finish(event, true)

		case EventComplete:
			if overallBar != nil && !overallBar.Completed() {
				// Inputs that vanished after the walk never reach the total
				overallBar.SetTotal(-1, true)
			}
		}
	}

	return callback, progress
}
