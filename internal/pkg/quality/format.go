package quality

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	build "github.com/ozacod/automation/internal/pkg/build/interfaces"
)

// ClangFormat is the formatter executable name
const ClangFormat = "clang-format"

// FindSources walks sourceDir and returns every regular file whose extension is in
// extensions, in lexical order. Symlinks to regular files are included. A missing
// sourceDir yields no files; unreadable directories below it are skipped.
func FindSources(sourceDir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != sourceDir {
				// unreadable subtrees are left out, the rest is still formatted
				return fs.SkipDir
			}
			if os.IsNotExist(err) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !isRegularFile(path, d) {
			return nil
		}
		if slices.Contains(extensions, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isRegularFile accepts regular files and symlinks resolving to one.
// Symlinked directories are not followed.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FormatCommand formats files in place with a single clang-format invocation
func FormatCommand(files []string) build.Command {
	args := make([]string, 0, len(files)+1)
	args = append(args, "-i")
	args = append(args, files...)
	return build.Command{Name: ClangFormat, Args: args}
}
