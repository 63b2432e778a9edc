package cli

import (
	"github.com/ozacod/automation/internal/pkg/build"
	"github.com/spf13/cobra"
)

// GenerateCmd creates the generate command
func GenerateCmd() *cobra.Command {
	return actionCmd(build.ActionGenerate,
		`Generate project files with CMake.

Creates the build folder when missing and configures it with the configured
generator and platform. The library option is always OFF for this action.`,
		`  automation generate
  automation generate -G Ninja -A ""      # single-platform generator
  automation generate --fresh=false       # reuse the existing cache`)
}
