// pkg/quickcdc/chunker.go
package quickcdc

import "iter"

// Chunker is a chunking session over one borrowed buffer.
// Chunks are produced lazily, one per call to Next.
type Chunker struct {
	params Params
	salt   uint64

	data   []byte // Borrowed, never written
	offset int    // Bytes already emitted
}

// New validates the sizes and returns a session over data.
// An empty data yields a session that is already exhausted.
func New(data []byte, targetSize, maxSize int, salt uint64) (*Chunker, error) {
	p, err := DeriveParams(targetSize, maxSize)
	if err != nil {
		return nil, err
	}

	return &Chunker{
		params: p,
		salt:   salt,
		data:   data,
	}, nil
}

// Next returns the next chunk and true, or nil and false once the buffer is
// exhausted. After exhaustion every call returns nil and false.
//
// The chunk aliases the session's buffer. Its capacity is clipped to its
// length, so appending to it never overwrites the following bytes.
func (c *Chunker) Next() ([]byte, bool) {
	remaining := c.data[c.offset:]
	if len(remaining) == 0 {
		return nil, false
	}

	n := c.params.Cutpoint(remaining, c.salt)
	c.offset += n

	return remaining[:n:n], true
}

// All returns an iterator over the chunks not yet produced.
// Breaking out of the loop leaves the session positioned after the last
// yielded chunk.
func (c *Chunker) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			chunk, ok := c.Next()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}

// Reset starts a new session over data with the same parameters and salt.
func (c *Chunker) Reset(data []byte) {
	c.data = data
	c.offset = 0
}

// Offset returns the number of bytes already emitted as chunks.
func (c *Chunker) Offset() int {
	return c.offset
}

// Remaining returns the number of bytes not yet emitted.
func (c *Chunker) Remaining() int {
	return len(c.data) - c.offset
}

// Params returns the derived scan parameters.
func (c *Chunker) Params() Params {
	return c.params
}

// WindowSize returns the derived scan window.
func (c *Chunker) WindowSize() int {
	return c.params.WindowSize
}

// MinSize returns the derived scan start offset.
func (c *Chunker) MinSize() int {
	return c.params.MinSize
}

// MaxSize returns the hard chunk size ceiling.
func (c *Chunker) MaxSize() int {
	return c.params.MaxSize
}

// Salt returns the session salt.
func (c *Chunker) Salt() uint64 {
	return c.salt
}
