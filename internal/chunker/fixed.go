// internal/chunker/fixed.go
package chunker

import "fmt"

type fixedSplitter struct {
	size int
}

func newFixedSplitter(p Params) (splitter, error) {
	if p.TargetSize <= 0 {
		return nil, fmt.Errorf("%w: targetSize (%d)", ErrInvalidSize, p.TargetSize)
	}
	return &fixedSplitter{size: p.TargetSize}, nil
}

func (s *fixedSplitter) split(data []byte, emit func(n int) error) error {
	for remaining := len(data); remaining > 0; {
		n := min(s.size, remaining)
		if err := emit(n); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
