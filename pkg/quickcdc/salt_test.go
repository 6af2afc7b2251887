// pkg/quickcdc/salt_test.go
package quickcdc

import "testing"

func TestSaltFromSeededSource(t *testing.T) {
	a := SaltFrom(newTestRand(42))
	b := SaltFrom(newTestRand(42))
	if a != b {
		t.Errorf("Seeded sources disagree: %#x != %#x", a, b)
	}
	if c := SaltFrom(newTestRand(43)); c == a {
		t.Errorf("Different seeds produced the same salt %#x", c)
	}
}

type fixedSource uint64

func (f fixedSource) Uint64() uint64 { return uint64(f) }

func TestSaltFromFixedSource(t *testing.T) {
	if got := SaltFrom(fixedSource(7)); got != 7 {
		t.Errorf("SaltFrom(fixed 7) = %d", got)
	}
}

func TestRandomSaltVaries(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 64; i++ {
		seen[RandomSalt()] = true
	}
	if len(seen) < 60 {
		t.Errorf("Expected distinct salts, got %d unique out of 64", len(seen))
	}

}

func TestSaltFromNilUsesProcessSource(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 8; i++ {
		seen[SaltFrom(nil)] = true
	}
	if len(seen) < 2 {
		t.Error("SaltFrom(nil) returned a constant")
	}
}
