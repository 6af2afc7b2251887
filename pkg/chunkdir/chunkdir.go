// pkg/chunkdir/chunkdir.go
package chunkdir

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/creativeyann17/go-quickcdc/internal/chunker"
	"github.com/creativeyann17/go-quickcdc/internal/chunkstore"
	"github.com/creativeyann17/go-quickcdc/internal/source"
	"github.com/creativeyann17/go-quickcdc/pkg/quickcdc"
)

// Run chunks every regular file under the input and reports statistics.
// Each file gets its own chunking session; sessions run in parallel and all
// share one salt.
func Run(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	log := opts.logger()

	salt := opts.Salt
	if opts.RandomSalt {
		salt = quickcdc.RandomSalt()
	}

	c, err := chunker.New(chunker.Params{
		Algorithm:  chunker.Algorithm(opts.Algorithm),
		TargetSize: opts.TargetSize,
		MaxSize:    opts.MaxSize,
		Salt:       salt,
		Hash:       opts.Dedup,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Algorithm:  opts.Algorithm,
		TargetSize: opts.TargetSize,
		MaxSize:    opts.MaxSize,
		Salt:       salt,
	}

	folders, totalFiles, totalSize, err := collectFiles(opts, result, log)
	if err != nil {
		return nil, err
	}
	if totalFiles == 0 {
		return nil, ErrNoFiles
	}
	result.FilesTotal = totalFiles

	log.WithFields(logrus.Fields{
		"files":     totalFiles,
		"bytes":     totalSize,
		"algorithm": opts.Algorithm,
		"target":    opts.TargetSize,
		"max":       opts.MaxSize,
		"threads":   opts.MaxThreads,
	}).Debug("starting chunking run")

	var index *chunkstore.Index
	if opts.Dedup {
		index = chunkstore.NewIndexWithCapacity(opts.IndexCapacity)
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:       EventStart,
			Total:      int64(totalFiles),
			TotalBytes: totalSize,
		})
	}

	var (
		resultMu       sync.Mutex
		processedCount atomic.Uint32
		vanishedCount  atomic.Uint32
		chunkedBytes   atomic.Uint64
		wg             sync.WaitGroup
	)

	fail := func(task fileTask, err error) {
		resultMu.Lock()
		result.Errors = append(result.Errors, fmt.Errorf("%s: %w", task.RelPath, err))
		result.PathsSkipped++
		resultMu.Unlock()

		log.WithError(err).WithField("file", task.RelPath).Warn("chunking failed")
		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:       EventError,
				FilePath:   task.RelPath,
				TotalBytes: task.Size,
			})
		}
	}

	processTask := func(task fileTask) {
		buf, err := source.Open(task.AbsPath, source.OpenOptions{
			Decompress:     opts.Decompress,
			MaxDecodedSize: opts.MaxDecodedSize,
			NoMmap:         opts.NoMmap,
		})
		if errors.Is(err, source.ErrEmptyFile) {
			// Truncated since the walk, or decoded to nothing
			vanishedCount.Add(1)
			resultMu.Lock()
			result.PathsSkipped++
			resultMu.Unlock()
			log.WithField("file", task.RelPath).Debug("skipping zero sized file")
			if progressCb != nil {
				progressCb(ProgressEvent{Type: EventFileComplete, FilePath: task.RelPath, TotalBytes: task.Size})
			}
			return
		}
		if err != nil {
			fail(task, err)
			return
		}
		defer buf.Close()

		size := int64(len(buf.Data))
		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:       EventFileStart,
				FilePath:   task.RelPath,
				Total:      size,
				TotalBytes: task.Size,
			})
		}

		var stats fileStats
		var sinceProgress uint64
		err = c.SplitWithCallback(buf.Data, func(chunk chunker.Chunk) error {
			stats.observe(chunk.OrigSize)
			if index != nil {
				index.Add(chunk.Hash, chunk.OrigSize)
			}

			sinceProgress += chunk.OrigSize
			if progressCb != nil && sinceProgress >= progressStep {
				sinceProgress = 0
				progressCb(ProgressEvent{
					Type:         EventFileProgress,
					FilePath:     task.RelPath,
					Current:      int64(stats.bytes),
					Total:        size,
					CurrentBytes: chunkedBytes.Load() + stats.bytes,
					Chunks:       stats.chunks,
				})
			}
			return nil
		})
		if err != nil {
			fail(task, err)
			return
		}

		chunkedBytes.Add(stats.bytes)
		resultMu.Lock()
		result.add(&stats)
		resultMu.Unlock()
		processedCount.Add(1)

		entry := log.WithFields(logrus.Fields{
			"file":   task.RelPath,
			"bytes":  stats.bytes,
			"chunks": stats.chunks,
		})
		if buf.Decoded {
			entry = entry.WithField("decoded", true)
		}
		if opts.Verbose {
			entry.Info("chunked")
		} else {
			entry.Debug("chunked")
		}

		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:         EventFileComplete,
				FilePath:     task.RelPath,
				Current:      size,
				Total:        size,
				CurrentBytes: chunkedBytes.Load(),
				TotalBytes:   task.Size,
				Chunks:       stats.chunks,
			})
		}
	}

	// One shared queue: any idle worker takes the next file, so files of
	// a single folder are chunked in parallel
	taskCh := make(chan fileTask, opts.MaxThreads*4)

	for i := 0; i < opts.MaxThreads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				processTask(task)
			}
		}()
	}

	go func() {
		for _, folder := range folders {
			for _, task := range folder.Files {
				taskCh <- task
			}
		}
		close(taskCh)
	}()

	wg.Wait()

	result.FilesProcessed = int(processedCount.Load())
	result.FilesTotal -= int(vanishedCount.Load())
	result.Duration = time.Since(start)
	if index != nil {
		stats := index.Stats()
		result.Dedup = &stats
	}

	log.WithFields(logrus.Fields{
		"files":    result.FilesProcessed,
		"chunks":   result.TotalChunks,
		"bytes":    result.TotalBytes,
		"duration": result.Duration,
		"errors":   len(result.Errors),
	}).Debug("chunking run complete")

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:         EventComplete,
			Current:      int64(result.FilesProcessed),
			Total:        int64(result.FilesTotal),
			CurrentBytes: result.TotalBytes,
			TotalBytes:   totalSize,
			Chunks:       result.TotalChunks,
		})
	}

	return result, nil
}
