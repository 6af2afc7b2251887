// internal/source/walk.go
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// File is a regular file found by Walk
type File struct {
	AbsPath string
	RelPath string // Relative to the walk root; the base name for a single-file root
	Size    uint64
}

// WalkOptions configures Walk
type WalkOptions struct {
	// UseGitignore excludes paths matched by .gitignore files under the root
	UseGitignore bool
}

// Walk collects regular files under root, which may also be a single file.
// Entries that cannot be read or are not regular files are returned as
// skipped errors; they never abort the walk. Files are sorted by RelPath.
func Walk(root string, opts WalkOptions) (files []File, skipped []error, err error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, []error{fmt.Errorf("%s: %w", root, ErrNotRegular)}, nil
		}
		return []File{{AbsPath: root, RelPath: filepath.Base(root), Size: uint64(info.Size())}}, nil, nil
	}

	// filepath.Walk does not follow a symlinked root
	if root, err = filepath.EvalSymlinks(root); err != nil {
		return nil, nil, fmt.Errorf("resolve input: %w", err)
	}

	var matcher *ignoreMatcher
	if opts.UseGitignore {
		if matcher, err = newIgnoreMatcher(root); err != nil {
			return nil, nil, fmt.Errorf("scan .gitignore files: %w", err)
		}
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", path, err))
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = filepath.Base(path)
		}

		if info.IsDir() {
			if path != root && matcher.ShouldIgnoreDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.ShouldIgnore(relPath) {
			return nil
		}

		if !info.Mode().IsRegular() {
			skipped = append(skipped, fmt.Errorf("%s: %w", relPath, ErrNotRegular))
			return nil
		}

		files = append(files, File{AbsPath: path, RelPath: relPath, Size: uint64(info.Size())})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("directory walk failed: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, skipped, nil
}
