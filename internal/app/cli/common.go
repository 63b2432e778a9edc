package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ozacod/automation/internal/pkg/build"
	"github.com/ozacod/automation/internal/pkg/build/cmake"
	iface "github.com/ozacod/automation/internal/pkg/build/interfaces"
	"github.com/ozacod/automation/internal/pkg/utils/colors"
	"github.com/ozacod/automation/pkg/config"
	"github.com/ozacod/automation/pkg/errors"
)

// Variables for mocking in tests
var (
	execLookPath = exec.LookPath
	newRunner    = func(stdout, stderr io.Writer) iface.Runner {
		return build.NewExecRunner(stdout, stderr)
	}
)

// Version is the automation version
const Version = "1.0.0"

// PrintError prints an error message to w
func PrintError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, colors.Wrap(colors.Enabled(w), colors.Red, colors.IconError+" "+msg))
}

// AddSettingsFlags registers the flags that override automation.yaml on cmd and its subcommands
func AddSettingsFlags(cmd *cobra.Command) {
	defaults := config.Default()
	flags := cmd.PersistentFlags()

	flags.String("config", config.DefaultFile, "Settings file (optional unless given explicitly)")
	flags.String("build-folder", defaults.BuildFolder, "Out-of-source build folder")
	flags.StringP("generator", "G", defaults.Generator, "CMake generator name")
	flags.StringP("platform", "A", string(defaults.Platform), "Target platform: x64, Win32, ARM64 (empty for single-platform generators)")
	flags.String("source-dir", defaults.SourceDir, "Source tree formatted by clang_format")
	flags.StringP("target", "t", defaults.Target, "Build target name")
	flags.Bool("fresh", defaults.Fresh, "Regenerate the build tree from scratch")
	flags.Bool("clean-first", defaults.CleanFirst, "Clean before building")
	flags.BoolP("verbose", "v", defaults.Verbose, "Pass --verbose to the build and stream raw tool output")
	flags.Bool("keep-going", defaults.KeepGoing, "Attempt the build step even when project generation failed")
}

// loadSettings layers defaults, the settings file and explicitly set flags
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	settings, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return config.Settings{}, err
	}

	if flags.Changed("build-folder") {
		settings.BuildFolder, _ = flags.GetString("build-folder")
	}
	if flags.Changed("generator") {
		settings.Generator, _ = flags.GetString("generator")
	}
	if flags.Changed("platform") {
		value, _ := flags.GetString("platform")
		platform, err := config.ParsePlatform(value)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Platform = platform
	}
	if flags.Changed("source-dir") {
		settings.SourceDir, _ = flags.GetString("source-dir")
	}
	if flags.Changed("target") {
		settings.Target, _ = flags.GetString("target")
	}
	if flags.Changed("fresh") {
		settings.Fresh, _ = flags.GetBool("fresh")
	}
	if flags.Changed("clean-first") {
		settings.CleanFirst, _ = flags.GetBool("clean-first")
	}
	if flags.Changed("verbose") {
		settings.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("keep-going") {
		settings.KeepGoing, _ = flags.GetBool("keep-going")
	}

	return settings, nil
}

// requiredTool names the tool an action needs before it touches the build folder, or "".
// clang_format is checked lazily: a tree without sources never needs the formatter.
func requiredTool(action build.Action) string {
	if action == build.ActionGenerate || action.IsBuild() {
		return cmake.Binary
	}
	return ""
}

// CheckCommandExists checks if a command is available in PATH
func CheckCommandExists(command string) bool {
	_, err := execLookPath(command)
	return err == nil
}

// runAction loads settings and drives the orchestrator through a single action
func runAction(cmd *cobra.Command, action build.Action) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if tool := requiredTool(action); tool != "" && !CheckCommandExists(tool) {
		return errors.NewToolError(tool, "not found in PATH", build.InstallHint(tool))
	}

	runner := newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return build.New(settings, runner, cmd.OutOrStdout()).Run(cmd.Context(), action)
}

// actionCmd builds the cobra command for one action
func actionCmd(action build.Action, long, example string) *cobra.Command {
	var aliases []string
	if alias := action.Alias(); alias != action.String() {
		aliases = append(aliases, alias)
	}

	return &cobra.Command{
		Use:     action.String(),
		Aliases: aliases,
		Short:   action.Description(),
		Long:    long,
		Example: example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, action)
		},
	}
}
