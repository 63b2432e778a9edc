package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	iface "github.com/ozacod/automation/internal/pkg/build/interfaces"
	"github.com/ozacod/automation/internal/pkg/build/mocks"
	"github.com/ozacod/automation/pkg/errors"
)

func TestCleanCmd(t *testing.T) {
	tmpDir := chdirTemp(t)
	ctrl := gomock.NewController(t)
	stubTools(t, mocks.NewMockRunner(ctrl))

	require.NoError(t, os.MkdirAll(filepath.Join("out", "Release"), 0755))

	out, err := execute(t, "clean", "--build-folder", "out")
	require.NoError(t, err)

	assert.Contains(t, out, "Removed out folder.")
	assert.NoDirExists(t, filepath.Join(tmpDir, "out"))
}

func TestGenerateCmdUsesFlags(t *testing.T) {
	chdirTemp(t)
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stubTools(t, runner, "cmake")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd iface.Command) error {
		assert.Equal(t, "cmake", cmd.Name)
		assert.Equal(t, []string{"..", "-G", "Ninja", "-DBUILD_LIB=OFF"}, cmd.Args)
		return nil
	})

	out, err := execute(t, "generate", "-G", "Ninja", "--platform=", "--fresh=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Project files generated successfully.")
	assert.DirExists(t, "build")
}

func TestBuildCmdByAlias(t *testing.T) {
	chdirTemp(t)
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stubTools(t, runner, "cmake")

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd iface.Command) error {
			assert.Equal(t, []string{"..", "-G", "Visual Studio 17 2022", "-A", "Win32", "--fresh", "-DBUILD_LIB=ON"}, cmd.Args)
			return nil
		}),
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd iface.Command) error {
			assert.Equal(t, []string{"--build", ".", "--clean-first", "--config", "Debug", "--target", "engine"}, cmd.Args)
			assert.True(t, cmd.Progress)
			return nil
		}),
	)

	out, err := execute(t, "build-debug-lib", "--target", "engine", "-A", "win32")
	require.NoError(t, err)
	assert.Contains(t, out, "Project built successfully in Debug mode.")
}

func TestBuildCmdMissingCMake(t *testing.T) {
	tmpDir := chdirTemp(t)
	ctrl := gomock.NewController(t)
	stubTools(t, mocks.NewMockRunner(ctrl))

	_, err := execute(t, "build_release_exe")
	require.Error(t, err)

	var toolErr *errors.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "cmake", toolErr.Tool)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is created before the tool check passes")
}

func TestBuildCmdReportsFailure(t *testing.T) {
	chdirTemp(t)
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stubTools(t, runner, "cmake")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(assert.AnError)

	out, err := execute(t, "build_release_exe")
	require.Error(t, err)
	var buildErr *errors.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, errors.PhaseGenerate, buildErr.Phase)
	assert.Contains(t, out, "Failed to generate project files.")
}

func TestFmtCmdWithoutSources(t *testing.T) {
	chdirTemp(t)
	ctrl := gomock.NewController(t)
	// clang-format is absent, which is fine when there is nothing to format
	stubTools(t, mocks.NewMockRunner(ctrl))

	out, err := execute(t, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "No source files found in Source.\n", out)
}

func TestFmtCmdFormatsSources(t *testing.T) {
	chdirTemp(t)
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stubTools(t, runner, "clang-format")

	require.NoError(t, os.MkdirAll("src", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("src", "main.cc"), []byte("int main(){}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join("src", "notes.txt"), []byte("todo\n"), 0644))
	require.NoError(t, os.WriteFile("automation.yaml", []byte("format_extensions: [\".cc\"]\n"), 0644))

	runner.EXPECT().Run(gomock.Any(), iface.Command{
		Name: "clang-format",
		Args: []string{"-i", filepath.Join("src", "main.cc")},
	}).Return(nil)

	out, err := execute(t, "clang_format", "--source-dir", "src")
	require.NoError(t, err)
	assert.Contains(t, out, "Clang-format successfully applied.")
}
