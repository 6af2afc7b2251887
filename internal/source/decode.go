// internal/source/decode.go
package source

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

type decoderFunc func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoderFunc{
	".zst":  decodeZstd,
	".zstd": decodeZstd,
	".gz":   decodeGzip,
	".xz":   decodeXz,
}

// decoderFor selects a decoder by file extension, nil for plain files
func decoderFor(path string) decoderFunc {
	return decoders[strings.ToLower(filepath.Ext(path))]
}

// IsCompressed reports whether Open would decode path when Decompress is set
func IsCompressed(path string) bool {
	return decoderFor(path) != nil
}

func decodeZstd(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func decodeGzip(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func decodeXz(r io.Reader) (io.ReadCloser, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(xr), nil
}

// decodeAll decodes r fully into memory, failing with ErrTooLarge past limit
// (0 = unlimited)
func decodeAll(r io.Reader, decode decoderFunc, limit int64) ([]byte, error) {
	rc, err := decode(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if limit <= 0 {
		return io.ReadAll(rc)
	}

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}
