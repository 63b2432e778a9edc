package cli

import (
	"github.com/ozacod/automation/internal/pkg/build"
	"github.com/spf13/cobra"
)

// FmtCmd creates the clang_format command
func FmtCmd() *cobra.Command {
	cmd := actionCmd(build.ActionClangFormat,
		"Format every source file under the source directory in place with clang-format (.cpp, .h and .hpp unless format_extensions says otherwise).",
		`  automation clang_format
  automation clang_format --source-dir src`)
	cmd.Aliases = append(cmd.Aliases, "fmt", "format")
	return cmd
}
