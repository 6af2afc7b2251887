// pkg/chunkdir/result.go
package chunkdir

import (
	"time"

	"github.com/creativeyann17/go-quickcdc/internal/chunkstore"
	"github.com/creativeyann17/go-quickcdc/pkg/report"
)

// Result contains statistics about a chunking run
type Result struct {
	// Total number of non-empty regular files found
	FilesTotal int

	// Number of files fully chunked
	FilesProcessed int

	// Entries not chunked: unreadable, zero sized or not regular files
	PathsSkipped int

	// Chunk statistics over all processed files
	TotalChunks uint64
	TotalBytes  uint64 // Bytes chunked (decoded size for decompressed inputs)
	MinChunk    uint64
	MaxChunk    uint64
	Histogram   report.Histogram

	// Wall clock time of the run, walk included
	Duration time.Duration

	// Parameters actually used
	Algorithm  string
	TargetSize int
	MaxSize    int
	Salt       uint64

	// Duplicate statistics, nil unless Options.Dedup is set
	Dedup *chunkstore.Stats

	// List of errors encountered (non-fatal)
	Errors []error
}

// AverageChunkSize returns the mean chunk length, 0 when no chunk was produced
func (r *Result) AverageChunkSize() uint64 {
	if r.TotalChunks == 0 {
		return 0
	}
	return r.TotalBytes / r.TotalChunks
}

// Throughput returns chunked bytes per second
func (r *Result) Throughput() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.TotalBytes) / r.Duration.Seconds()
}

// Success returns true if all files were processed without errors
func (r *Result) Success() bool {
	return len(r.Errors) == 0 && r.FilesProcessed == r.FilesTotal
}

// add merges the statistics of one file
func (r *Result) add(fs *fileStats) {
	if fs.chunks == 0 {
		return
	}
	if r.TotalChunks == 0 || fs.minChunk < r.MinChunk {
		r.MinChunk = fs.minChunk
	}
	r.MaxChunk = max(r.MaxChunk, fs.maxChunk)
	r.TotalChunks += fs.chunks
	r.TotalBytes += fs.bytes
	r.Histogram.Merge(&fs.histogram)
}

func (r *Result) GetFilesTotal() int         { return r.FilesTotal }
func (r *Result) GetFilesProcessed() int     { return r.FilesProcessed }
func (r *Result) GetPathsSkipped() int       { return r.PathsSkipped }
func (r *Result) GetTotalBytes() uint64      { return r.TotalBytes }
func (r *Result) GetDuration() time.Duration { return r.Duration }
func (r *Result) GetErrors() []error         { return r.Errors }

// fileStats accumulates chunk statistics for one file inside a worker
type fileStats struct {
	chunks    uint64
	bytes     uint64
	minChunk  uint64
	maxChunk  uint64
	histogram report.Histogram
}

func (fs *fileStats) observe(size uint64) {
	if fs.chunks == 0 || size < fs.minChunk {
		fs.minChunk = size
	}
	fs.maxChunk = max(fs.maxChunk, size)
	fs.chunks++
	fs.bytes += size
	fs.histogram.Add(size)
}
