package cli

import (
	"github.com/ozacod/automation/internal/pkg/build"
	"github.com/spf13/cobra"
)

// CleanCmd creates the clean command
func CleanCmd() *cobra.Command {
	return actionCmd(build.ActionClean,
		`Remove the build folder and everything in it.

Nothing happens when the folder does not exist.`,
		`  automation clean
  automation clean --build-folder out/vs2022`)
}
