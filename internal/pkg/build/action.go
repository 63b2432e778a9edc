package build

import (
	"fmt"
	"strings"

	"github.com/ozacod/automation/pkg/config"
)

// Action is one of the operations selectable on the command line
type Action int

const (
	ActionClean Action = iota
	ActionGenerate
	ActionBuildDebugExe
	ActionBuildReleaseExe
	ActionBuildDebugLib
	ActionBuildReleaseLib
	ActionClangFormat
)

var actionNames = [...]string{
	ActionClean:           "clean",
	ActionGenerate:        "generate",
	ActionBuildDebugExe:   "build_debug_exe",
	ActionBuildReleaseExe: "build_release_exe",
	ActionBuildDebugLib:   "build_debug_lib",
	ActionBuildReleaseLib: "build_release_lib",
	ActionClangFormat:     "clang_format",
}

var actionDescriptions = [...]string{
	ActionClean:           "Remove the build folder",
	ActionGenerate:        "Generate project files with CMake",
	ActionBuildDebugExe:   "Generate and build the executable in Debug mode",
	ActionBuildReleaseExe: "Generate and build the executable in Release mode",
	ActionBuildDebugLib:   "Generate and build the library in Debug mode",
	ActionBuildReleaseLib: "Generate and build the library in Release mode",
	ActionClangFormat:     "Format sources in place with clang-format",
}

// Actions returns every action in declaration order
func Actions() []Action {
	return []Action{
		ActionClean,
		ActionGenerate,
		ActionBuildDebugExe,
		ActionBuildReleaseExe,
		ActionBuildDebugLib,
		ActionBuildReleaseLib,
		ActionClangFormat,
	}
}

func (a Action) valid() bool {
	return a >= ActionClean && a <= ActionClangFormat
}

func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Description is the one-line help text of the action
func (a Action) Description() string {
	if !a.valid() {
		return ""
	}
	return actionDescriptions[a]
}

// Alias is the hyphenated spelling accepted alongside the canonical name
func (a Action) Alias() string {
	return strings.ReplaceAll(a.String(), "_", "-")
}

// IsBuild reports whether the action compiles a target
func (a Action) IsBuild() bool {
	switch a {
	case ActionBuildDebugExe, ActionBuildReleaseExe, ActionBuildDebugLib, ActionBuildReleaseLib:
		return true
	}
	return false
}

// IsLibrary reports whether the action builds the library flavour
func (a Action) IsLibrary() bool {
	return a == ActionBuildDebugLib || a == ActionBuildReleaseLib
}

// IsDebug reports whether the action builds in Debug mode
func (a Action) IsDebug() bool {
	return a == ActionBuildDebugExe || a == ActionBuildDebugLib
}

// Apply derives the run settings for the action. BuildLib and Mode are always
// recomputed, whatever the base settings carried.
func (a Action) Apply(s config.Settings) config.Settings {
	s.BuildLib = a.IsLibrary()
	if a.IsDebug() {
		s.Mode = config.Debug
	} else {
		s.Mode = config.Release
	}
	s.FormatExtensions = append([]string(nil), s.FormatExtensions...)
	return s
}
