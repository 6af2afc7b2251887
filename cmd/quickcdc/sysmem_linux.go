//go:build linux

package main

import "golang.org/x/sys/unix"

// getTotalSystemMemory returns total system RAM in KB (Linux)
func getTotalSystemMemory() (uint64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, err
	}

	// Totalram is counted in units of si.Unit bytes
	return uint64(si.Totalram) * uint64(si.Unit) / 1024, nil
}
