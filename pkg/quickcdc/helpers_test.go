// pkg/quickcdc/helpers_test.go
package quickcdc

import (
	"encoding/binary"
	"math/rand/v2"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func fillRandom(rng *rand.Rand, buf []byte) {
	var word [8]byte
	for i := 0; i < len(buf); i += 8 {
		binary.LittleEndian.PutUint64(word[:], rng.Uint64())
		copy(buf[i:], word[:])
	}
}

func randomBuffer(seed uint64, n int) []byte {
	buf := make([]byte, n)
	fillRandom(newTestRand(seed), buf)
	return buf
}

// collect drains a session into a slice of chunks.
func collect(c *Chunker) [][]byte {
	var chunks [][]byte
	for {
		chunk, ok := c.Next()
		if !ok {
			return chunks
		}
		chunks = append(chunks, chunk)
	}
}

func lengths(chunks [][]byte) []int {
	out := make([]int, len(chunks))
	for i, c := range chunks {
		out[i] = len(c)
	}
	return out
}
