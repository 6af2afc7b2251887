// internal/chunker/chunker.go
package chunker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// Algorithm names a boundary selection strategy
type Algorithm string

const (
	// AlgorithmAE is salted asymmetric extremum chunking (pkg/quickcdc)
	AlgorithmAE Algorithm = "ae"

	// AlgorithmFastCDC is gear-hash FastCDC, for comparison runs
	AlgorithmFastCDC Algorithm = "fastcdc"

	// AlgorithmRabin is Rabin fingerprint chunking, for comparison runs
	AlgorithmRabin Algorithm = "rabin"

	// AlgorithmFixed cuts every TargetSize bytes
	AlgorithmFixed Algorithm = "fixed"
)

// DefaultAlgorithm is used when Params.Algorithm is empty
const DefaultAlgorithm = AlgorithmAE

var (
	// ErrUnknownAlgorithm is returned for an unregistered algorithm name
	ErrUnknownAlgorithm = errors.New("unknown chunking algorithm")

	// ErrInvalidSize is returned when a backend rejects the requested sizes
	ErrInvalidSize = errors.New("invalid chunk size")
)

// splitter reports successive chunk lengths of data through emit
type splitter interface {
	split(data []byte, emit func(n int) error) error
}

type factory func(p Params) (splitter, error)

var factories = map[Algorithm]factory{
	AlgorithmAE:      newAESplitter,
	AlgorithmFastCDC: newFastCDCSplitter,
	AlgorithmRabin:   newRabinSplitter,
	AlgorithmFixed:   newFixedSplitter,
}

// Algorithms returns the registered algorithm names, sorted
func Algorithms() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ParseAlgorithm validates an algorithm name. Empty selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return DefaultAlgorithm, nil
	}
	algo := Algorithm(name)
	if _, ok := factories[algo]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownAlgorithm, name, Algorithms())
	}
	return algo, nil
}

// Params configures a Chunker
type Params struct {
	Algorithm  Algorithm
	TargetSize int // Rounded to the nearest power of two by rabin
	MaxSize    int
	Salt       uint64 // Ignored by fastcdc, rabin and fixed
	Hash       bool   // Compute a BLAKE3 digest per chunk
}

// Chunk is a view into the split buffer with its digest
type Chunk struct {
	Offset   uint64
	Data     []byte
	Hash     [32]byte // Zero unless Params.Hash is set
	OrigSize uint64
}

// Chunker splits in-memory buffers with one algorithm.
// It holds no per-buffer state and is safe for concurrent use.
type Chunker struct {
	params   Params
	splitter splitter
}

// New validates params against the selected algorithm
func New(p Params) (*Chunker, error) {
	algo, err := ParseAlgorithm(string(p.Algorithm))
	if err != nil {
		return nil, err
	}
	p.Algorithm = algo

	s, err := factories[algo](p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", algo, err)
	}

	return &Chunker{
		params:   p,
		splitter: s,
	}, nil
}

// SplitWithCallback splits data and calls fn for each chunk in order.
// Chunk.Data aliases data. Processing stops at the first error returned by fn.
func (c *Chunker) SplitWithCallback(data []byte, fn func(chunk Chunk) error) error {
	var offset int

	return c.splitter.split(data, func(n int) error {
		view := data[offset : offset+n : offset+n]

		chunk := Chunk{
			Offset:   uint64(offset),
			Data:     view,
			OrigSize: uint64(n),
		}
		if c.params.Hash {
			chunk.Hash = blake3.Sum256(view)
		}

		offset += n
		return fn(chunk)
	})
}

// Split returns all chunks of data
func (c *Chunker) Split(data []byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0, 8)
	err := c.SplitWithCallback(data, func(chunk Chunk) error {
		chunks = append(chunks, chunk)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// Algorithm returns the selected algorithm
func (c *Chunker) Algorithm() Algorithm {
	return c.params.Algorithm
}

// TargetSize returns the configured target chunk size
func (c *Chunker) TargetSize() int {
	return c.params.TargetSize
}

// MaxSize returns the configured maximum chunk size
func (c *Chunker) MaxSize() int {
	return c.params.MaxSize
}
