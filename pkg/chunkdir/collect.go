// pkg/chunkdir/collect.go
package chunkdir

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/creativeyann17/go-quickcdc/internal/source"
)

type fileTask struct {
	AbsPath string
	RelPath string
	Size    uint64
}

// folderTask groups files by parent folder so the queue visits a
// directory's files together
type folderTask struct {
	FolderPath string     // Relative folder path
	Files      []fileTask // Files in this folder
}

// collectFiles gathers all files from either the Files list or InputPath,
// grouped by parent folder. Skipped entries are counted in result.
// Returns folder tasks, total file count, total size, and any error
func collectFiles(opts *Options, result *Result, log logrus.FieldLogger) ([]folderTask, int, uint64, error) {
	folderMap := make(map[string][]fileTask)
	seen := make(map[string]bool)
	var totalSize uint64
	var totalFiles int

	walkOpts := source.WalkOptions{UseGitignore: opts.UseGitignore}

	skip := func(err error) {
		result.PathsSkipped++
		if errors.Is(err, source.ErrNotRegular) {
			log.WithError(err).Debug("skipping path")
			return
		}
		log.WithError(err).Warn("skipping path")
		result.Errors = append(result.Errors, err)
	}

	addFiles := func(files []source.File, prefix string) {
		for _, f := range files {
			if seen[f.AbsPath] {
				continue
			}
			seen[f.AbsPath] = true

			if f.Size == 0 {
				result.PathsSkipped++
				log.WithField("file", f.RelPath).Debug("skipping zero sized file")
				continue
			}

			relPath := f.RelPath
			if prefix != "" {
				relPath = filepath.Join(prefix, relPath)
			}

			folderPath := filepath.Dir(relPath)
			if folderPath == "." {
				folderPath = "" // Root level files
			}

			folderMap[folderPath] = append(folderMap[folderPath], fileTask{
				AbsPath: f.AbsPath,
				RelPath: relPath,
				Size:    f.Size,
			})
			totalSize += f.Size
			totalFiles++
		}
	}

	if len(opts.Files) > 0 {
		// Custom file list mode: directories keep their base name as prefix
		for _, inputPath := range opts.Files {
			cleanPath := filepath.Clean(inputPath)
			files, skipped, err := source.Walk(cleanPath, walkOpts)
			if err != nil {
				skip(fmt.Errorf("%s: %w", inputPath, err))
				continue
			}
			for _, s := range skipped {
				skip(s)
			}

			prefix := ""
			if len(files) != 1 || files[0].AbsPath != cleanPath {
				prefix = filepath.Base(cleanPath)
			}
			addFiles(files, prefix)
		}
	} else {
		files, skipped, err := source.Walk(opts.InputPath, walkOpts)
		if err != nil {
			return nil, 0, 0, err
		}
		for _, s := range skipped {
			skip(s)
		}
		addFiles(files, "")
	}

	folders := make([]folderTask, 0, len(folderMap))
	for folderPath, files := range folderMap {
		folders = append(folders, folderTask{
			FolderPath: folderPath,
			Files:      files,
		})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].FolderPath < folders[j].FolderPath })

	return folders, totalFiles, totalSize, nil
}
