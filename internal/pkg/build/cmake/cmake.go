// Package cmake assembles cmake command lines from run settings.
package cmake

import (
	"os"
	"path/filepath"
	"regexp"

	build "github.com/ozacod/automation/internal/pkg/build/interfaces"
	"github.com/ozacod/automation/pkg/config"
)

// Binary is the cmake executable name
const Binary = "cmake"

// BuildLibDefine is the project option toggling a library build
const BuildLibDefine = "BUILD_LIB"

var projectRe = regexp.MustCompile(`project\s*\(\s*([^\s\)]+)`)

// ProjectName returns the name declared by project(...) in dir/CMakeLists.txt, or "".
func ProjectName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "CMakeLists.txt"))
	if err != nil {
		return ""
	}

	matches := projectRe.FindStringSubmatch(string(data))
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// flag fragment names, in the order they appear on a command line
const (
	flagGenerator  = "generator"
	flagPlatform   = "platform"
	flagFresh      = "fresh"
	flagCleanFirst = "clean_first"
	flagVerbose    = "verbose"
	flagBuildLib   = "build_lib"
)

// flags maps every optional fragment to its tokens. Disabled fragments are empty.
func flags(s config.Settings) map[string][]string {
	return map[string][]string{
		flagGenerator:  when(s.Generator != "", "-G", s.Generator),
		flagPlatform:   when(s.Platform != config.PlatformNone, "-A", string(s.Platform)),
		flagFresh:      when(s.Fresh, "--fresh"),
		flagCleanFirst: when(s.CleanFirst, "--clean-first"),
		flagVerbose:    when(s.Verbose, "--verbose"),
		flagBuildLib:   {"-D" + BuildLibDefine + "=" + s.BuildLibValue()},
	}
}

func when(enabled bool, tokens ...string) []string {
	if !enabled {
		return nil
	}
	return tokens
}

func join(fixed []string, fragments map[string][]string, order ...string) []string {
	args := append([]string(nil), fixed...)
	for _, name := range order {
		args = append(args, fragments[name]...)
	}
	return args
}

// GenerateArgs returns the arguments of the configure step.
// sourceDir is the project directory as seen from the build folder.
func GenerateArgs(s config.Settings, sourceDir string) []string {
	return join([]string{sourceDir}, flags(s), flagGenerator, flagPlatform, flagFresh, flagBuildLib)
}

// BuildArgs returns the arguments of the build step, run from inside the build folder.
func BuildArgs(s config.Settings) []string {
	args := join([]string{"--build", "."}, flags(s), flagCleanFirst, flagVerbose)
	return append(args, "--config", string(s.Mode), "--target", s.Target)
}

// GenerateCommand is the configure invocation executed in buildDir.
func GenerateCommand(s config.Settings, buildDir, sourceDir string) build.Command {
	return build.Command{
		Name: Binary,
		Args: GenerateArgs(s, sourceDir),
		Dir:  buildDir,
	}
}

// BuildCommand is the build invocation executed in buildDir.
// Output is condensed into a progress bar unless the run is verbose.
func BuildCommand(s config.Settings, buildDir string) build.Command {
	return build.Command{
		Name:     Binary,
		Args:     BuildArgs(s),
		Dir:      buildDir,
		Progress: !s.Verbose,
	}
}
