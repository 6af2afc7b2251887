// internal/source/gitignore_test.go
package source

import (
	"os"
	"path/filepath"
	"testing"
)

type ignoreCase struct {
	path     string
	expected bool
}

func checkIgnore(t *testing.T, m *ignoreMatcher, cases []ignoreCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := m.ShouldIgnore(tc.path); got != tc.expected {
				t.Errorf("ShouldIgnore(%q) = %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

func checkIgnoreDir(t *testing.T, m *ignoreMatcher, cases []ignoreCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run("dir_"+tc.path, func(t *testing.T) {
			if got := m.ShouldIgnoreDir(tc.path); got != tc.expected {
				t.Errorf("ShouldIgnoreDir(%q) = %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

func mustMatcher(t *testing.T, root string) *ignoreMatcher {
	t.Helper()
	m, err := newIgnoreMatcher(root)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("expected non-nil matcher")
	}
	return m
}

func TestIgnoreMatcher_BasicPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "*.log\nbuild/\n*.tmp\n")
	createFile(t, tmpDir, "keep.txt", "content")
	createFile(t, tmpDir, "debug.log", "log content")
	createFile(t, tmpDir, "build/output.bin", "binary")
	createFile(t, tmpDir, "src/main.go", "package main")

	checkIgnore(t, mustMatcher(t, tmpDir), []ignoreCase{
		{"keep.txt", false},
		{"debug.log", true},
		{"cache.tmp", true},
		{"build/output.bin", true},
		{"src/main.go", false},
	})
}

func TestIgnoreMatcher_DirectoryPruning(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "build/\nnode_modules/\n*.log\n")
	createDir(t, tmpDir, "build")
	createDir(t, tmpDir, "node_modules")
	createDir(t, tmpDir, "src")
	createDir(t, tmpDir, "debug.log")

	checkIgnoreDir(t, mustMatcher(t, tmpDir), []ignoreCase{
		{"build", true},
		{"node_modules", true},
		{"src", false},
		{"debug.log", false}, // file pattern, not a prunable dir
	})
}

func TestIgnoreMatcher_Nested(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "*.log\n")
	createFile(t, tmpDir, "src/.gitignore", "*.tmp\n")
	createDir(t, tmpDir, "src/lib")

	checkIgnore(t, mustMatcher(t, tmpDir), []ignoreCase{
		{"debug.log", true},
		{"src/cache.tmp", true},
		{"src/lib/cache.tmp", true},
		{"cache.tmp", false}, // src/.gitignore does not reach the root
		{"src/main.go", false},
		{"src/lib/data.txt", false},
	})
}

func TestIgnoreMatcher_Negation(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "*.log\n!important.log\n")

	checkIgnore(t, mustMatcher(t, tmpDir), []ignoreCase{
		{"debug.log", true},
		{"important.log", false},
		{"keep.txt", false},
	})
}

func TestIgnoreMatcher_CommentsAndDoubleStar(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "# comment\n**/*.bak\n\n# dirs\n**/temp/\n\n")
	createDir(t, tmpDir, "a/b/temp")

	m := mustMatcher(t, tmpDir)
	checkIgnore(t, m, []ignoreCase{
		{"file.bak", true},
		{"a/file.bak", true},
		{"a/b/file.bak", true},
		{"keep.txt", false},
		{"# comment", false},
	})
	checkIgnoreDir(t, m, []ignoreCase{
		{"temp", true},
		{"a/temp", true},
		{"a/b/temp", true},
		{"a", false},
	})
}

func TestIgnoreMatcher_NoGitignore(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, "debug.log", "log")

	m, err := newIgnoreMatcher(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Fatal("expected nil matcher when no .gitignore exists")
	}
	if m.ShouldIgnore("debug.log") || m.ShouldIgnoreDir("any") {
		t.Error("nil matcher should ignore nothing")
	}
}

func TestIgnoreMatcher_EmptyGitignore(t *testing.T) {
	tmpDir := t.TempDir()
	createFile(t, tmpDir, ".gitignore", "")

	m, err := newIgnoreMatcher(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if m.ShouldIgnore("file.txt") {
		t.Error("empty .gitignore should not ignore any files")
	}
}

func TestAncestors(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"file.log", []string{""}},
		{"src/file.log", []string{"", "src"}},
		{"src/lib/file.log", []string{"", "src", "src/lib"}},
		{"build/", []string{"", "build"}},
	}

	for _, tc := range tests {
		got := ancestors(tc.path)
		if len(got) != len(tc.want) {
			t.Errorf("ancestors(%q) = %q, want %q", tc.path, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ancestors(%q) = %q, want %q", tc.path, got, tc.want)
				break
			}
		}
	}
}

// Helper functions

func createFile(t *testing.T, base, relPath, content string) {
	t.Helper()
	fullPath := filepath.Join(base, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func createDir(t *testing.T, base, relPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(base, relPath), 0755); err != nil {
		t.Fatal(err)
	}
}
