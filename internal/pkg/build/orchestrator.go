package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ozacod/automation/internal/pkg/build/cmake"
	iface "github.com/ozacod/automation/internal/pkg/build/interfaces"
	"github.com/ozacod/automation/internal/pkg/quality"
	"github.com/ozacod/automation/internal/pkg/utils/colors"
	"github.com/ozacod/automation/pkg/config"
	xerrors "github.com/ozacod/automation/pkg/errors"
)

// Orchestrator turns one action into its sequence of filesystem and tool steps.
// Base settings are never modified; each run derives its own copy from the action.
type Orchestrator struct {
	settings config.Settings
	runner   iface.Runner
	out      io.Writer
	color    bool
}

// New creates an orchestrator reporting status lines to out
func New(settings config.Settings, runner iface.Runner, out io.Writer) *Orchestrator {
	return &Orchestrator{
		settings: settings,
		runner:   runner,
		out:      out,
		color:    colors.Enabled(out),
	}
}

// Run executes action to completion. Every failed step is reported and returned.
func (o *Orchestrator) Run(ctx context.Context, action Action) error {
	s := action.Apply(o.settings)
	if err := s.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionClean:
		return o.Clean(s)
	case ActionGenerate:
		return o.Generate(ctx, s)
	case ActionBuildDebugExe, ActionBuildReleaseExe, ActionBuildDebugLib, ActionBuildReleaseLib:
		return o.Build(ctx, s)
	case ActionClangFormat:
		return o.Format(ctx, s)
	}
	return fmt.Errorf("%w %q", xerrors.ErrUnknownAction, action)
}

// Clean removes the build folder. An absent folder is not an error.
func (o *Orchestrator) Clean(s config.Settings) error {
	if !dirExists(s.BuildFolder) {
		o.info("%s folder does not exist.", s.BuildFolder)
		return nil
	}

	if err := os.RemoveAll(s.BuildFolder); err != nil {
		o.fail("Failed to remove %s folder.", s.BuildFolder)
		return xerrors.NewBuildError(xerrors.PhaseClean, "failed to remove "+s.BuildFolder, err)
	}
	o.success("Removed %s folder.", s.BuildFolder)
	return nil
}

// Generate creates the build folder when missing and runs the cmake configure step in it.
func (o *Orchestrator) Generate(ctx context.Context, s config.Settings) error {
	if !dirExists(s.BuildFolder) {
		if err := os.MkdirAll(s.BuildFolder, 0755); err != nil {
			o.fail("Failed to create %s folder.", s.BuildFolder)
			return xerrors.NewBuildError(xerrors.PhaseGenerate, "failed to create "+s.BuildFolder, err)
		}
		o.info("Created %s folder.", s.BuildFolder)
	}

	buildDir, sourceDir, err := buildPaths(s.BuildFolder)
	if err != nil {
		return xerrors.NewBuildError(xerrors.PhaseGenerate, "failed to resolve project paths", err)
	}

	cmd := cmake.GenerateCommand(s, buildDir, sourceDir)
	o.step("Generating project files with command: %s", cmd)

	if err := o.runner.Run(ctx, cmd); err != nil {
		o.fail("Failed to generate project files.")
		return xerrors.NewBuildError(xerrors.PhaseGenerate, "cmake configure failed", err)
	}
	o.success("Project files generated successfully.")
	return nil
}

// Build always regenerates first, then runs the cmake build step in the build folder.
// A failed generate stops the build unless KeepGoing is set.
func (o *Orchestrator) Build(ctx context.Context, s config.Settings) error {
	project := cmake.ProjectName(".")
	if project == "" {
		project = s.Target
	}
	kind := "executable"
	if s.BuildLib {
		kind = "library"
	}
	o.step("Build %s %s", project, colors.Wrap(o.color, colors.Gray, fmt.Sprintf("(%s %s, target %s)", s.Mode, kind, s.Target)))

	genErr := o.Generate(ctx, s)
	if genErr != nil && !s.KeepGoing {
		return genErr
	}

	if !dirExists(s.BuildFolder) {
		o.fail("%s folder does not exist. Please generate project files first.", s.BuildFolder)
		return errors.Join(genErr, xerrors.NewBuildError(xerrors.PhaseBuild, s.BuildFolder, xerrors.ErrBuildFolderMissing))
	}

	buildDir, err := filepath.Abs(s.BuildFolder)
	if err != nil {
		return errors.Join(genErr, xerrors.NewBuildError(xerrors.PhaseBuild, "failed to resolve build folder", err))
	}

	cmd := cmake.BuildCommand(s, buildDir)
	o.step("Building with command: %s", cmd)

	if err := o.runner.Run(ctx, cmd); err != nil {
		o.fail("Failed to build project in %s mode.", s.Mode)
		return errors.Join(genErr, xerrors.NewBuildError(xerrors.PhaseBuild, "cmake build failed", err))
	}
	o.success("Project built successfully in %s mode.", s.Mode)

	// an unreadable build tree only loses the listing
	if artifacts, err := FindArtifacts(s.BuildFolder, s.Mode, s.BuildLib); err == nil {
		for _, artifact := range artifacts {
			o.info("  %s", artifact)
		}
	}
	return genErr
}

// Format runs clang-format in place over every matching file under SourceDir, in one invocation.
func (o *Orchestrator) Format(ctx context.Context, s config.Settings) error {
	files, err := quality.FindSources(s.SourceDir, s.FormatExtensions)
	if err != nil {
		o.fail("Failed to scan %s.", s.SourceDir)
		return xerrors.NewBuildError(xerrors.PhaseFormat, "failed to scan "+s.SourceDir, err)
	}
	if len(files) == 0 {
		o.info("No source files found in %s.", s.SourceDir)
		return nil
	}

	o.step("Formatting %d files in %s", len(files), s.SourceDir)
	if err := o.runner.Run(ctx, quality.FormatCommand(files)); err != nil {
		o.fail("Error running clang-format.")
		return xerrors.NewBuildError(xerrors.PhaseFormat, "clang-format failed", err)
	}
	o.success("Clang-format successfully applied.")
	return nil
}

// buildPaths returns the absolute build folder and the project directory relative to it
func buildPaths(buildFolder string) (buildDir, sourceDir string, err error) {
	projectDir, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	buildDir, err = filepath.Abs(buildFolder)
	if err != nil {
		return "", "", err
	}
	sourceDir, err = filepath.Rel(buildDir, projectDir)
	if err != nil {
		sourceDir = projectDir
	}
	return buildDir, sourceDir, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (o *Orchestrator) info(format string, args ...any) {
	fmt.Fprintf(o.out, format+"\n", args...)
}

func (o *Orchestrator) step(format string, args ...any) {
	fmt.Fprintf(o.out, "%s %s\n", colors.Wrap(o.color, colors.Cyan, colors.IconStep), fmt.Sprintf(format, args...))
}

func (o *Orchestrator) success(format string, args ...any) {
	fmt.Fprintln(o.out, colors.Wrap(o.color, colors.Green, colors.IconSuccess+" "+fmt.Sprintf(format, args...)))
}

func (o *Orchestrator) fail(format string, args ...any) {
	fmt.Fprintln(o.out, colors.Wrap(o.color, colors.Red, colors.IconError+" "+fmt.Sprintf(format, args...)))
}
