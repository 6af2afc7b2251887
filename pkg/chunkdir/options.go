// pkg/chunkdir/options.go
package chunkdir

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/creativeyann17/go-quickcdc/internal/chunker"
)

const (
	// DefaultTargetSize is the target chunk size of the chunkdir driver
	DefaultTargetSize = 128_000

	// DefaultMaxSize is the maximum chunk size of the chunkdir driver
	DefaultMaxSize = 524_288

	// DefaultMaxDecodedSize bounds one decompressed input
	DefaultMaxDecodedSize = 1 << 30
)

// Options configures a chunking run
type Options struct {
	// Input path (file or directory)
	// Ignored if Files is provided
	InputPath string

	// Files allows library users to provide a custom list of files/folders to chunk
	// When set, InputPath is ignored
	Files []string

	// Algorithm selects the boundary strategy: "ae", "fastcdc", "rabin" or "fixed"
	// Default: "ae"
	Algorithm string

	// Target chunk size in bytes (at least 64 for "ae")
	// Default: 128000
	TargetSize int

	// Maximum chunk size in bytes (at least 2*TargetSize for "ae")
	// Default: 524288, or 4*TargetSize when that is larger
	MaxSize int

	// Salt pins the comparator salt so runs are reproducible
	Salt uint64

	// RandomSalt draws one salt for the whole run, shared by every file
	// Default: true
	RandomSalt bool

	// Maximum number of concurrent chunking threads
	// Default: runtime.NumCPU()
	MaxThreads int

	// UseGitignore respects .gitignore files to exclude matching paths
	UseGitignore bool

	// Decompress chunks the decoded content of .zst, .gz and .xz inputs
	Decompress bool

	// MaxDecodedSize bounds one decoded input in bytes (0 = unlimited)
	// Default: 1 GiB
	MaxDecodedSize int64

	// NoMmap reads inputs into memory instead of mapping them
	NoMmap bool

	// Dedup hashes every chunk with BLAKE3 and counts repeated chunks
	Dedup bool

	// IndexCapacity bounds the number of digests kept for Dedup (0 = unlimited)
	IndexCapacity int

	// Verbose logs one line per file
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool

	// Logger receives diagnostics (optional, discarded when nil)
	Logger logrus.FieldLogger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Algorithm:      string(chunker.DefaultAlgorithm),
		TargetSize:     DefaultTargetSize,
		MaxSize:        DefaultMaxSize,
		RandomSalt:     true,
		MaxThreads:     runtime.NumCPU(),
		MaxDecodedSize: DefaultMaxDecodedSize,
	}
}

// Validate checks if options are valid and fills in defaults.
// Chunk size bounds are checked by the selected algorithm in Run.
func (o *Options) Validate() error {
	if o.InputPath == "" && len(o.Files) == 0 {
		return ErrInputRequired
	}

	algo, err := chunker.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	o.Algorithm = string(algo)

	if o.TargetSize == 0 {
		o.TargetSize = DefaultTargetSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = max(DefaultMaxSize, 4*o.TargetSize)
	}

	if o.RandomSalt && o.Salt != 0 {
		return ErrSaltConflict
	}

	if o.MaxThreads < 0 {
		return ErrInvalidThreads
	}
	if o.MaxThreads == 0 {
		o.MaxThreads = runtime.NumCPU()
	}

	if o.MaxDecodedSize < 0 {
		return ErrInvalidDecodedSize
	}

	if o.IndexCapacity < 0 {
		o.IndexCapacity = 0
	}

	if o.Quiet {
		o.Verbose = false
	}
	return nil
}

// logger returns the configured logger or one that discards everything
func (o *Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
