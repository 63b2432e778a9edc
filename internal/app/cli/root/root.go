package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ozacod/automation/internal/app/cli"
	"github.com/ozacod/automation/pkg/config"
	xerrors "github.com/ozacod/automation/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = NewRootCmd()

// NewRootCmd creates the root command with the settings flags but no actions
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "automation <action>",
		Short: "CMake and clang-format automation for C++ projects",
		Long: `automation - CMake and clang-format automation for C++ projects

Runs exactly one action per invocation: clean, generate, build_debug_exe,
build_release_exe, build_debug_lib, build_release_lib or clang_format.

Settings come from the built-in defaults, then automation.yaml when present,
then the flags below.`,
		Version: cli.Version,
		// Don't show usage on errors by default
		SilenceUsage:  true,
		SilenceErrors: true, // handle printing ourselves in Execute
		// Subcommands match first; reaching here means no action was named
		RunE: func(*cobra.Command, []string) error {
			return xerrors.ErrMissingAction
		},
	}

	cli.AddSettingsFlags(cmd)
	return cmd
}

// Execute runs the root command and returns the process exit code.
// Usage is printed when the command line itself could not be parsed.
func Execute(ctx context.Context) int {
	return run(ctx, rootCmd)
}

func run(ctx context.Context, cmd *cobra.Command) int {
	started := false
	cmd.PersistentPreRun = func(*cobra.Command, []string) { started = true }

	c, err := cmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	w := c.ErrOrStderr()
	report(w, err)
	if !started || errors.Is(err, xerrors.ErrMissingAction) {
		fmt.Fprint(w, c.UsageString())
	}
	return 1
}

// report prints err once, in the form most useful for its kind
func report(w io.Writer, err error) {
	var toolErr *xerrors.ToolError
	switch {
	case errors.As(err, &toolErr):
		// drop any step wrapping, the tool and its install hint are what to act on
		cli.PrintError(w, "%v", toolErr)
	case xerrors.IsConfigError(err):
		cli.PrintError(w, "%v", err)
		fmt.Fprintf(w, "Settings come from %s and the flags listed by --help.\n", config.DefaultFile)
	default:
		cli.PrintError(w, "%v", err)
	}
}

// GetRootCmd returns the root command (for testing or extending)
func GetRootCmd() *cobra.Command {
	return rootCmd
}
