// internal/source/open.go
package source

import (
	"fmt"
	"io"
	"os"
)

// Buffer holds the bytes of one input. Data stays valid until Close.
type Buffer struct {
	Data    []byte
	Mapped  bool // Data is a read-only memory mapping
	Decoded bool // Data was decompressed into memory

	release func() error
}

// Close releases the mapping, if any. Data must not be used afterwards.
func (b *Buffer) Close() error {
	b.Data = nil
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}

// OpenOptions configures Open
type OpenOptions struct {
	// Decompress decodes .zst, .gz and .xz inputs before chunking
	Decompress bool

	// MaxDecodedSize bounds a decoded input in bytes (0 = unlimited)
	MaxDecodedSize int64

	// NoMmap reads inputs into memory instead of mapping them
	NoMmap bool
}

// Open returns the content of path as a non-empty buffer. Zero-length files
// fail with ErrEmptyFile and anything but a regular file with ErrNotRegular.
func Open(path string, opts OpenOptions) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotRegular
	}
	if info.Size() == 0 {
		return nil, ErrEmptyFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.Decompress {
		if decode := decoderFor(path); decode != nil {
			data, err := decodeAll(f, decode, opts.MaxDecodedSize)
			if err != nil {
				return nil, fmt.Errorf("decode: %w", err)
			}
			if len(data) == 0 {
				return nil, ErrEmptyFile
			}
			return &Buffer{Data: data, Decoded: true}, nil
		}
	}

	if opts.NoMmap || !mmapSupported {
		data, err := readAll(f, info.Size())
		if err != nil {
			return nil, err
		}
		return &Buffer{Data: data}, nil
	}

	data, release, err := mapFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return &Buffer{Data: data, Mapped: true, release: release}, nil
}

func readAll(f *os.File, size int64) ([]byte, error) {
	data := make([]byte, size)
	n, err := f.ReadAt(data, 0)
	if n == len(data) {
		return data, nil
	}
	if n == 0 {
		// Truncated since the stat
		return nil, ErrEmptyFile
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return data[:n], nil
}
