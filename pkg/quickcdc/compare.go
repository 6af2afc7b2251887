// pkg/quickcdc/compare.go
package quickcdc

import "encoding/binary"

// wordSize is the width of the comparison window.
const wordSize = 8

// word loads the 8 bytes at off as a big-endian integer. This is the same
// value as a native little-endian load followed by a byte swap, which keeps
// the low-address bytes most significant. off+8 must not exceed len(data).
func word(data []byte, off int) uint64 {
	return binary.BigEndian.Uint64(data[off : off+wordSize])
}

// saltedGreater reports whether the salted word at a is strictly greater
// than the salted word at b.
func saltedGreater(data []byte, a, b int, salt uint64) bool {
	return word(data, a)^salt > word(data, b)^salt
}
