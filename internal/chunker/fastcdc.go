// internal/chunker/fastcdc.go
package chunker

import (
	"bytes"
	"errors"
	"io"

	"github.com/jotfs/fastcdc-go"
)

type fastCDCSplitter struct {
	opts fastcdc.Options
}

func newFastCDCSplitter(p Params) (splitter, error) {
	// FastCDC requires minSize >= 64
	minSize := p.TargetSize / 4
	if minSize < 64 {
		minSize = 64
	}

	opts := fastcdc.Options{
		MinSize:     minSize,
		AverageSize: p.TargetSize,
		MaxSize:     p.MaxSize,
	}

	// Validate eagerly so bad sizes fail at construction
	if _, err := fastcdc.NewChunker(bytes.NewReader(nil), opts); err != nil {
		return nil, errors.Join(ErrInvalidSize, err)
	}

	return &fastCDCSplitter{opts: opts}, nil
}

func (s *fastCDCSplitter) split(data []byte, emit func(n int) error) error {
	c, err := fastcdc.NewChunker(bytes.NewReader(data), s.opts)
	if err != nil {
		return err
	}

	for {
		chunk, err := c.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(chunk.Length); err != nil {
			return err
		}
	}
}
