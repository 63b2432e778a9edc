package cli

import (
	"github.com/ozacod/automation/internal/pkg/build"
	"github.com/spf13/cobra"
)

const buildLong = `Generate project files, then build the target with CMake.

Project generation always runs first. A failed generation stops the build
unless --keep-going is set.`

// BuildCmds creates the four build commands (debug/release, executable/library)
func BuildCmds() []*cobra.Command {
	return []*cobra.Command{
		actionCmd(build.ActionBuildDebugExe, buildLong,
			`  automation build_debug_exe
  automation build_debug_exe --target engine -v`),
		actionCmd(build.ActionBuildReleaseExe, buildLong,
			`  automation build_release_exe
  automation build_release_exe --clean-first=false`),
		actionCmd(build.ActionBuildDebugLib, buildLong,
			`  automation build_debug_lib`),
		actionCmd(build.ActionBuildReleaseLib, buildLong,
			`  automation build_release_lib --keep-going`),
	}
}
