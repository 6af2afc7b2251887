// pkg/report/report_test.go
package report

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeResult struct {
	total, processed, skipped int
	bytes                     uint64
	duration                  time.Duration
	errs                      []error
}

func (f fakeResult) GetFilesTotal() int         { return f.total }
func (f fakeResult) GetFilesProcessed() int     { return f.processed }
func (f fakeResult) GetPathsSkipped() int       { return f.skipped }
func (f fakeResult) GetTotalBytes() uint64      { return f.bytes }
func (f fakeResult) GetDuration() time.Duration { return f.duration }
func (f fakeResult) GetErrors() []error         { return f.errs }

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(fakeResult{
		total:     3,
		processed: 2,
		skipped:   4,
		bytes:     2048,
		duration:  1500 * time.Millisecond,
		errs:      []error{errors.New("a.bin: permission denied")},
	})

	for _, want := range []string{
		"Completed with 1 errors:",
		"  - a.bin: permission denied",
		"Duration:        1500 ms",
		"Files processed: 2 / 3",
		"Paths skipped:   4",
		"Total bytes:     2048 (2KiB)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSummaryNoErrors(t *testing.T) {
	out := FormatSummary(fakeResult{total: 1, processed: 1})
	if strings.Contains(out, "errors") {
		t.Errorf("unexpected error section:\n%s", out)
	}
	if !strings.HasPrefix(out, "Summary:\n") {
		t.Errorf("expected summary header, got:\n%s", out)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0B"},
		{512, "512B"},
		{1024, "1KiB"},
		{1536, "1.5KiB"},
		{1 << 20, "1MiB"},
		{5 << 30, "5GiB"},
	}
	for _, tc := range tests {
		if got := FormatSize(tc.bytes); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0); got != "-" {
		t.Errorf("FormatRate(0) = %q", got)
	}
	if got := FormatRate(2048); got != "2KiB/s" {
		t.Errorf("FormatRate(2048) = %q", got)
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"short.txt", 30, "short.txt"},
		{"a/very/long/directory/structure/file.txt", 20, "...tructure/file.txt"},
		{"dir/an_extremely_long_file_name.bin", 12, "..._name.bin"},
	}
	for _, tc := range tests {
		got := TruncateLeft(tc.path, tc.maxLen)
		if got != tc.want {
			t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tc.path, tc.maxLen, got, tc.want)
		}
		if len(got) > tc.maxLen {
			t.Errorf("TruncateLeft(%q, %d) exceeds max length: %q", tc.path, tc.maxLen, got)
		}
	}
}

func TestHistogramBuckets(t *testing.T) {
	tests := []struct {
		size uint64
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{64, 6},
		{127, 6},
		{128, 7},
		{128000, 16},
		{1 << 63, 63},
	}
	for _, tc := range tests {
		if got := Bucket(tc.size); got != tc.want {
			t.Errorf("Bucket(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestHistogramMerge(t *testing.T) {
	var a, b Histogram
	a.Add(100)
	a.Add(100)
	b.Add(100)
	b.Add(5000)

	a.Merge(&b)
	if a[6] != 3 || a[12] != 1 {
		t.Errorf("unexpected buckets after merge: [6]=%d [12]=%d", a[6], a[12])
	}
	if a.Total() != 4 {
		t.Errorf("Total() = %d, want 4", a.Total())
	}
}

func TestFormatHistogram(t *testing.T) {
	var h Histogram
	if got := FormatHistogram(&h, 10); got != "" {
		t.Errorf("empty histogram should render nothing, got %q", got)
	}

	for range 4 {
		h.Add(100)
	}
	h.Add(300)

	out := FormatHistogram(&h, 8)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Buckets 6..8 inclusive, the empty middle bucket is kept
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[64B, 128B)") || !strings.HasSuffix(lines[0], strings.Repeat("#", 8)) {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if strings.Contains(lines[1], "#") {
		t.Errorf("empty bucket should have no bar: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], " ##") {
		t.Errorf("expected a quarter-width bar, got %q", lines[2])
	}
}
