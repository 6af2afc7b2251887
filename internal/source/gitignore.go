// internal/source/gitignore.go
package source

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreMatcher applies every .gitignore found under a root, each one to the
// paths below its own directory.
type ignoreMatcher struct {
	root     string
	matchers map[string]*ignore.GitIgnore // Key: slash-separated dir relative to root, "" = root
}

// newIgnoreMatcher pre-scans root for .gitignore files.
// Returns nil if there are none, and a nil matcher ignores nothing.
func newIgnoreMatcher(root string) (*ignoreMatcher, error) {
	root = filepath.Clean(root)
	m := &ignoreMatcher{
		root:     root,
		matchers: make(map[string]*ignore.GitIgnore),
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || info.Name() != ".gitignore" {
			// Inaccessible paths are reported by the main walk
			return nil
		}

		relDir, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return nil
		}
		if relDir == "." {
			relDir = ""
		}

		compiled, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			// Unreadable .gitignore files are skipped
			return nil
		}
		m.matchers[filepath.ToSlash(relDir)] = compiled
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(m.matchers) == 0 {
		return nil, nil
	}
	return m, nil
}

// ShouldIgnore reports whether relPath (relative to root) matches a pattern
// of any .gitignore in its ancestor directories. Negation only works within
// a single .gitignore.
func (m *ignoreMatcher) ShouldIgnore(relPath string) bool {
	if m == nil {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	for _, dir := range ancestors(relPath) {
		compiled, ok := m.matchers[dir]
		if !ok {
			continue
		}

		candidate := relPath
		if dir != "" {
			candidate = strings.TrimPrefix(relPath, dir+"/")
		}
		if compiled.MatchesPath(candidate) {
			return true
		}
	}
	return false
}

// ShouldIgnoreDir reports whether a whole directory can be pruned. Only
// directory patterns ("build/") prune; file patterns ("*.log") that happen
// to match a directory name do not.
func (m *ignoreMatcher) ShouldIgnoreDir(relPath string) bool {
	if m == nil {
		return false
	}
	return m.ShouldIgnore(relPath+"/") && !m.ShouldIgnore(relPath)
}

// ancestors lists the directories from root down to the parent of relPath.
// For "src/lib/file.log" it returns ["", "src", "src/lib"].
func ancestors(relPath string) []string {
	dirs := []string{""}

	parent := filepath.ToSlash(filepath.Dir(relPath))
	if parent == "." || parent == "" {
		return dirs
	}

	current := ""
	for _, part := range strings.Split(parent, "/") {
		if part == "" {
			continue
		}
		if current == "" {
			current = part
		} else {
			current += "/" + part
		}
		dirs = append(dirs, current)
	}
	return dirs
}
