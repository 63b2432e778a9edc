// Package config holds the settings that drive a single automation run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/ozacod/automation/pkg/errors"
)

// DefaultFile is the settings file looked up in the working directory
const DefaultFile = "automation.yaml"

// Platform is the architecture token passed to the generator with -A
type Platform string

const (
	PlatformX64   Platform = "x64"
	PlatformWin32 Platform = "Win32"
	PlatformARM64 Platform = "ARM64"
	// PlatformNone omits -A, for generators without platform support (Ninja, Makefiles)
	PlatformNone Platform = ""
)

// Platforms lists every accepted platform token
var Platforms = []Platform{PlatformX64, PlatformWin32, PlatformARM64}

// ParsePlatform matches s case-insensitively against the known platforms.
// An empty string selects PlatformNone.
func ParsePlatform(s string) (Platform, error) {
	if s == "" {
		return PlatformNone, nil
	}
	for _, p := range Platforms {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", errors.NewConfigError("platform", fmt.Sprintf("unsupported value %q", s),
		"use one of: "+joinPlatforms()+" (or leave empty for single-platform generators)")
}

func joinPlatforms() string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// BuildMode is the configuration passed to cmake --build --config
type BuildMode string

const (
	Debug   BuildMode = "Debug"
	Release BuildMode = "Release"
)

// Settings is the immutable configuration of one run.
// BuildLib and Mode are never read from a file; they are derived from the selected action.
type Settings struct {
	BuildFolder      string   `yaml:"build_folder"`
	Generator        string   `yaml:"generator"`
	Platform         Platform `yaml:"platform"`
	Fresh            bool     `yaml:"fresh"`
	CleanFirst       bool     `yaml:"clean_first"`
	Verbose          bool     `yaml:"verbose"`
	SourceDir        string   `yaml:"source_dir"`
	Target           string   `yaml:"target"`
	FormatExtensions []string `yaml:"format_extensions"`
	KeepGoing        bool     `yaml:"keep_going"`

	BuildLib bool      `yaml:"-"`
	Mode     BuildMode `yaml:"-"`
}

// Default returns the built-in settings used when no file overrides them
func Default() Settings {
	return Settings{
		BuildFolder:      "build",
		Generator:        "Visual Studio 17 2022", // https://cmake.org/cmake/help/latest/manual/cmake-generators.7.html
		Platform:         PlatformX64,
		Fresh:            true,
		CleanFirst:       true,
		Verbose:          false,
		SourceDir:        "Source",
		Target:           "Stockfish",
		FormatExtensions: []string{".cpp", ".h", ".hpp"},
		BuildLib:         false,
		Mode:             Release,
	}
}

// Load reads settings from path on top of Default.
// A missing file yields the defaults unless required is set.
func Load(path string, required bool) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return settings, nil
		}
		return Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, zerr.With(zerr.Wrap(err, "failed to parse settings"), "path", path)
	}

	platform, err := ParsePlatform(string(settings.Platform))
	if err != nil {
		return Settings{}, err
	}
	settings.Platform = platform

	return settings, nil
}

// Validate reports the first setting that cannot drive a run
func (s Settings) Validate() error {
	if strings.TrimSpace(s.BuildFolder) == "" {
		return errors.NewConfigError("build_folder", "must not be empty", "")
	}
	switch filepath.Clean(s.BuildFolder) {
	case ".", "..", string(filepath.Separator):
		return errors.NewConfigError("build_folder", fmt.Sprintf("refusing to use %q as build folder", s.BuildFolder),
			"point it at a dedicated directory such as \"build\"")
	}
	if s.Platform != PlatformNone && !slices.Contains(Platforms, s.Platform) {
		return errors.NewConfigError("platform", fmt.Sprintf("unsupported value %q", s.Platform), "use one of: "+joinPlatforms())
	}
	if s.Mode != Debug && s.Mode != Release {
		return errors.NewConfigError("mode", fmt.Sprintf("unsupported value %q", s.Mode), "use Debug or Release")
	}
	if strings.TrimSpace(s.Target) == "" {
		return errors.NewConfigError("target", "must not be empty", "set target in "+DefaultFile+" or pass --target")
	}
	if strings.TrimSpace(s.SourceDir) == "" {
		return errors.NewConfigError("source_dir", "must not be empty", "")
	}
	if len(s.FormatExtensions) == 0 {
		return errors.NewConfigError("format_extensions", "must list at least one extension", "")
	}
	for _, ext := range s.FormatExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.NewConfigError("format_extensions", fmt.Sprintf("%q is not an extension", ext), "extensions start with a dot, e.g. \".cpp\"")
		}
	}
	return nil
}

// BuildLibValue renders BuildLib the way CMake options expect it
func (s Settings) BuildLibValue() string {
	if s.BuildLib {
		return "ON"
	}
	return "OFF"
}
