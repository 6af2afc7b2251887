// pkg/chunkdir/errors.go
package chunkdir

import "errors"

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input path is required")

	// ErrSaltConflict is returned when a pinned salt is combined with RandomSalt
	ErrSaltConflict = errors.New("salt and random salt are mutually exclusive")

	// ErrInvalidThreads is returned for a negative thread count
	ErrInvalidThreads = errors.New("thread count must not be negative")

	// ErrInvalidDecodedSize is returned for a negative decoded size limit
	ErrInvalidDecodedSize = errors.New("max decoded size must not be negative")

	// ErrNoFiles is returned when no non-empty regular files are found
	ErrNoFiles = errors.New("no regular files found to chunk")
)
