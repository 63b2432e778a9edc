package build

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ozacod/automation/pkg/config"
)

var libraryExts = []string{".a", ".so", ".dylib", ".dll", ".lib"}

// skipped never count as executables even with the exec bit set
var skippedExts = []string{".o", ".obj", ".cmake", ".ninja", ".make", ".txt", ".sh"}

// FindArtifacts lists what a build left behind for mode, sorted by path.
// Multi-config generators write into <buildFolder>/<mode>, single-config ones into
// buildFolder itself; both are checked. Subdirectories are not descended into.
func FindArtifacts(buildFolder string, mode config.BuildMode, lib bool) ([]string, error) {
	var artifacts []string

	for _, dir := range []string{filepath.Join(buildFolder, string(mode)), buildFolder} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}

			name := entry.Name()
			if strings.Contains(name, "_test") || hasExt(name, skippedExts) {
				continue
			}

			if lib {
				if hasExt(name, libraryExts) {
					artifacts = append(artifacts, filepath.Join(dir, name))
				}
				continue
			}

			if runtime.GOOS == "windows" {
				if strings.HasSuffix(name, ".exe") {
					artifacts = append(artifacts, filepath.Join(dir, name))
				}
			} else if info.Mode()&0111 != 0 && !hasExt(name, libraryExts) {
				artifacts = append(artifacts, filepath.Join(dir, name))
			}
		}
	}

	sort.Strings(artifacts)
	return artifacts, nil
}

func hasExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
