// pkg/quickcdc/params.go
package quickcdc

import (
	"fmt"
	"math"
)

const (
	// MinTargetSize is the smallest accepted target chunk size in bytes.
	MinTargetSize = 64

	// windowRatio scales the target window down to the scan window ("warp forward").
	windowRatio = 0.56
)

// Params holds the values derived from a target and maximum chunk size.
// They are constant for a session.
type Params struct {
	WindowSize int // Bytes scanned past the last marker update before a forced cut
	MinSize    int // Scan start offset; no cutpoint can occur below it
	MaxSize    int // Hard ceiling for every chunk
}

// DeriveParams validates the requested sizes and computes the scan parameters.
// The maxSize check runs first, so a request failing both reports
// ErrInsufficientMaxSize.
func DeriveParams(targetSize, maxSize int) (Params, error) {
	if maxSize < 0 || targetSize > maxSize/2 {
		return Params{}, fmt.Errorf("%w: maxSize (%d), targetSize (%d)", ErrInsufficientMaxSize, maxSize, targetSize)
	}

	if targetSize < MinTargetSize {
		return Params{}, fmt.Errorf("%w: got %d", ErrInsufficientTargetSize, targetSize)
	}

	targetWindow := int(float64(targetSize) / (math.E - 1))

	return Params{
		WindowSize: int(float64(targetWindow) * windowRatio),
		MinSize:    targetSize - targetWindow,
		MaxSize:    maxSize,
	}, nil
}
