// pkg/report/histogram.go
package report

import (
	"fmt"
	"math/bits"
	"strings"
)

// HistogramBuckets is the number of power-of-two size classes
const HistogramBuckets = 64

// Histogram counts sizes in power-of-two buckets. Bucket k holds sizes in
// [2^k, 2^(k+1)); zero lands in bucket 0 with size 1.
type Histogram [HistogramBuckets]uint64

// Bucket returns the bucket index for size
func Bucket(size uint64) int {
	if size == 0 {
		return 0
	}
	return bits.Len64(size) - 1
}

// Add counts one size
func (h *Histogram) Add(size uint64) {
	h[Bucket(size)]++
}

// Merge adds every bucket of other into h
func (h *Histogram) Merge(other *Histogram) {
	for i, n := range other {
		h[i] += n
	}
}

// Total returns the number of counted sizes
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, n := range h {
		total += n
	}
	return total
}

// FormatHistogram renders the non-empty range of buckets, one line per
// bucket, with bars scaled to barWidth characters
func FormatHistogram(h *Histogram, barWidth int) string {
	first, last := -1, -1
	var peak uint64
	for i, n := range h {
		if n == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		peak = max(peak, n)
	}
	if first < 0 {
		return ""
	}

	var sb strings.Builder
	total := h.Total()
	for i := first; i <= last; i++ {
		n := h[i]
		width := 0
		if peak > 0 {
			width = int(n * uint64(barWidth) / peak)
		}
		if n > 0 && width == 0 {
			width = 1
		}

		lower := uint64(1) << i
		label := fmt.Sprintf("[%s, %s)", FormatSize(lower), FormatSize(lower<<1))
		if i == HistogramBuckets-1 {
			label = fmt.Sprintf("[%s, +inf)", FormatSize(lower))
		}
		fmt.Fprintf(&sb, "  %-22s %10d %5.1f%% %s\n", label, n, float64(n)/float64(total)*100, strings.Repeat("#", width))
	}
	return sb.String()
}
