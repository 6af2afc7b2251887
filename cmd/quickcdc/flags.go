package main

import (
	"fmt"
	"strconv"

	"github.com/docker/go-units"
)

// parseSize accepts plain byte counts and binary units ("128000", "128k", "512KiB", "4MB")
func parseSize(name, value string) (int, error) {
	n, err := units.RAMInBytes(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("--%s: size must not be negative", name)
	}
	return int(n), nil
}

// parseSalt accepts decimal, 0x hex, 0o octal or 0b binary
func parseSalt(value string) (uint64, error) {
	salt, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("--salt: %w", err)
	}
	return salt, nil
}
