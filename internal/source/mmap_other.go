//go:build !unix

// internal/source/mmap_other.go
package source

import (
	"errors"
	"os"
)

const mmapSupported = false

func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	return nil, nil, errors.ErrUnsupported
}
