// pkg/quickcdc/errors.go
package quickcdc

import "errors"

var (
	// ErrInsufficientMaxSize is returned when maxSize is less than twice targetSize.
	ErrInsufficientMaxSize = errors.New("maxSize must be at least twice targetSize")

	// ErrInsufficientTargetSize is returned when targetSize is below MinTargetSize.
	ErrInsufficientTargetSize = errors.New("targetSize must be at least 64 bytes")
)
