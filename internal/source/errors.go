// internal/source/errors.go
package source

import "errors"

var (
	// ErrEmptyFile is returned for zero-length inputs, which yield no chunks
	ErrEmptyFile = errors.New("zero sized file")

	// ErrNotRegular is returned for directories, devices, sockets and symlinks
	ErrNotRegular = errors.New("not a regular file")

	// ErrTooLarge is returned when a decoded input exceeds MaxDecodedSize
	ErrTooLarge = errors.New("decoded input exceeds size limit")
)
