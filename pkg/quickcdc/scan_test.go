// pkg/quickcdc/scan_test.go
package quickcdc

import (
	"bytes"
	"testing"
)

// params for target 64, max 128: window 20, min 27
var smallParams = Params{WindowSize: 20, MinSize: 27, MaxSize: 128}

func TestCutpointTailRule(t *testing.T) {
	for _, n := range []int{0, 1, 8, 46, 47} {
		data := bytes.Repeat([]byte{0x5a}, n)
		if got := smallParams.Cutpoint(data, 0); got != n {
			t.Errorf("Cutpoint(len %d) = %d, want whole remainder", n, got)
		}
	}
}

func TestCutpointShortScanFallsThrough(t *testing.T) {
	// Just above the tail threshold, shorter than max: no cut inside the scan range
	data := make([]byte, 48)
	if got := smallParams.Cutpoint(data, 0); got != 48 {
		t.Errorf("Cutpoint = %d, want 48", got)
	}
}

func TestCutpointConstantDataHitsMax(t *testing.T) {
	for _, b := range []byte{0x00, 0xff, 0x37} {
		data := bytes.Repeat([]byte{b}, 1000)
		if got := smallParams.Cutpoint(data, 0x1234); got != smallParams.MaxSize {
			t.Errorf("Cutpoint(constant %#x) = %d, want %d", b, got, smallParams.MaxSize)
		}
	}
}

func TestCutpointWindowForcedCut(t *testing.T) {
	// 0xff everywhere except an 8-byte zero run at [50, 58).
	// The marker follows every position up to 50 (word(50) == 0 is the
	// minimum); every later word is greater, so the window expires at 70.
	data := bytes.Repeat([]byte{0xff}, 200)
	for i := 50; i < 58; i++ {
		data[i] = 0
	}

	if got := smallParams.Cutpoint(data, 0); got != 70 {
		t.Errorf("Cutpoint = %d, want 70", got)
	}
}

func TestCutpointNoCutBeforeMinSize(t *testing.T) {
	// The minimum sits at offset 0, so the marker never moves. Its window
	// expires at 20, below MinSize, which is never visited: max is the only exit.
	data := bytes.Repeat([]byte{0xff}, 200)
	for i := 0; i < 8; i++ {
		data[i] = 0
	}

	if got := smallParams.Cutpoint(data, 0); got != smallParams.MaxSize {
		t.Errorf("Cutpoint = %d, want %d", got, smallParams.MaxSize)
	}
}

func TestCutpointIncreasingRunKeepsMarker(t *testing.T) {
	// Strictly increasing content after the marker never resets it.
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}
	// word(27) > word(0) and increasing afterwards: marker stays 0, i never
	// equals 0+20 past 27, so the ceiling applies.
	if got := smallParams.Cutpoint(data, 0); got != smallParams.MaxSize {
		t.Errorf("Cutpoint = %d, want %d", got, smallParams.MaxSize)
	}

	// Decreasing content keeps moving the marker, the ceiling applies too.
	for i := range data {
		data[i] = byte(255 - i)
	}
	if got := smallParams.Cutpoint(data, 0); got != smallParams.MaxSize {
		t.Errorf("Cutpoint = %d, want %d", got, smallParams.MaxSize)
	}
}

func TestCutpointEndOfScanUsesMax(t *testing.T) {
	// Longer than max but the scan range ends before max: cut at max.
	p := Params{WindowSize: 20, MinSize: 27, MaxSize: 100}
	data := make([]byte, 105)
	if got := p.Cutpoint(data, 0); got != 100 {
		t.Errorf("Cutpoint = %d, want 100", got)
	}
}

func TestCutpointBounds(t *testing.T) {
	rng := newTestRand(7)
	for n := 0; n < 600; n++ {
		data := make([]byte, n)
		fillRandom(rng, data)
		salt := rng.Uint64()

		got := smallParams.Cutpoint(data, salt)
		if n == 0 {
			if got != 0 {
				t.Fatalf("Cutpoint(empty) = %d, want 0", got)
			}
			continue
		}
		if got < 1 || got > smallParams.MaxSize || got > n {
			t.Fatalf("Cutpoint(len %d) = %d out of bounds", n, got)
		}
	}
}
