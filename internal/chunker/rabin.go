// internal/chunker/rabin.go
package chunker

import (
	"bytes"
	"fmt"
	"io"
	"math/bits"

	"github.com/restic/chunker"
)

// rabinPolynomial is a fixed irreducible polynomial so runs are comparable
const rabinPolynomial = chunker.Pol(0x3DA3358B4DC173)

type rabinSplitter struct {
	minSize     uint
	maxSize     uint
	averageBits int
}

func newRabinSplitter(p Params) (splitter, error) {
	if p.TargetSize < 64 || p.MaxSize <= p.TargetSize {
		return nil, fmt.Errorf("%w: targetSize (%d) must be >= 64 and below maxSize (%d)", ErrInvalidSize, p.TargetSize, p.MaxSize)
	}

	// Stay above the 64-byte rolling window
	minSize := max(p.TargetSize/4, 64)

	return &rabinSplitter{
		minSize:     uint(minSize),
		maxSize:     uint(p.MaxSize),
		averageBits: nearestPowerBits(p.TargetSize),
	}, nil
}

func (s *rabinSplitter) split(data []byte, emit func(n int) error) error {
	c := chunker.NewWithBoundaries(bytes.NewReader(data), rabinPolynomial, s.minSize, s.maxSize)
	c.SetAverageBits(s.averageBits)

	buf := make([]byte, s.maxSize)
	for {
		chunk, err := c.Next(buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(int(chunk.Length)); err != nil {
			return err
		}
	}
}

// nearestPowerBits returns the exponent of the power of two closest to n.
// Rabin cuts on a bit mask, so the average chunk size is always a power of
// two; 128000 maps to 17 (131072), not 16.
func nearestPowerBits(n int) int {
	lower := bits.Len(uint(n)) - 1
	if n-1<<lower > 1<<(lower+1)-n {
		return lower + 1
	}
	return lower
}
