// pkg/quickcdc/scan.go
package quickcdc

// Cutpoint returns the length of the next chunk at the start of remaining.
// The result is in [1, MaxSize] and never exceeds len(remaining); it is 0
// only when remaining is empty.
//
// This is the zero-allocation entry point: the caller tracks its own offset
// and calls Cutpoint again on remaining[n:].
func (p Params) Cutpoint(remaining []byte, salt uint64) int {
	n := len(remaining)

	// Too small to scan: the remainder is the final chunk.
	if n <= p.MinSize+p.WindowSize {
		return n
	}

	marker := 0
	end := n - wordSize

	// Positions below MinSize can never become a cutpoint, start past them.
	for i := p.MinSize; i < end; i++ {
		// Hard ceiling. Constant data (sparse files, zeros) only ever ends here.
		if i == p.MaxSize {
			return i
		}

		// Not greater than the current extremum: it becomes the new marker.
		if !saltedGreater(remaining, i, marker, salt) {
			marker = i
			continue
		}

		// A full window passed without a new marker.
		if i == marker+p.WindowSize {
			return i
		}
	}

	if p.MaxSize < n {
		return p.MaxSize
	}
	return n
}
