// pkg/quickcdc/salt.go
package quickcdc

import "math/rand/v2"

// SaltSource supplies salt values. *rand.Rand from math/rand/v2 satisfies it,
// so tests can pass a seeded generator.
type SaltSource interface {
	Uint64() uint64
}

// RandomSalt returns a well-distributed salt from the process-level source.
// It is not suitable where unpredictability matters.
func RandomSalt() uint64 {
	return rand.Uint64()
}

// SaltFrom draws a salt from src, falling back to RandomSalt when src is nil.
func SaltFrom(src SaltSource) uint64 {
	if src == nil {
		return RandomSalt()
	}
	return src.Uint64()
}
