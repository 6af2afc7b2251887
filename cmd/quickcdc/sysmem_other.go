//go:build !linux && !darwin

package main

import "errors"

// getTotalSystemMemory is unsupported here; callers fall back to a fixed limit
func getTotalSystemMemory() (uint64, error) {
	return 0, errors.ErrUnsupported
}
