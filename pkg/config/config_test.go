package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/ozacod/automation/pkg/errors"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "build", s.BuildFolder)
	assert.Equal(t, "Visual Studio 17 2022", s.Generator)
	assert.Equal(t, PlatformX64, s.Platform)
	assert.True(t, s.Fresh)
	assert.True(t, s.CleanFirst)
	assert.False(t, s.Verbose)
	assert.Equal(t, "Source", s.SourceDir)
	assert.False(t, s.BuildLib)
	assert.Equal(t, Release, s.Mode)
	assert.Equal(t, "Stockfish", s.Target)
	assert.Equal(t, []string{".cpp", ".h", ".hpp"}, s.FormatExtensions)
	assert.NoError(t, s.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	s, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = Load(path, true)
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `
build_folder: out
generator: Ninja
platform: ""
fresh: false
verbose: true
target: engine
format_extensions: [".cc", ".hh"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "out", s.BuildFolder)
	assert.Equal(t, "Ninja", s.Generator)
	assert.Equal(t, PlatformNone, s.Platform)
	assert.False(t, s.Fresh)
	assert.True(t, s.Verbose)
	assert.Equal(t, "engine", s.Target)
	assert.Equal(t, []string{".cc", ".hh"}, s.FormatExtensions)

	// untouched keys keep their defaults
	assert.True(t, s.CleanFirst)
	assert.Equal(t, "Source", s.SourceDir)
	assert.Equal(t, Release, s.Mode)
}

func TestLoadIgnoresDerivedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("build_lib: true\nmode: Debug\n"), 0644))

	s, err := Load(path, true)
	require.NoError(t, err)
	assert.False(t, s.BuildLib)
	assert.Equal(t, Release, s.Mode)
}

func TestLoadNormalizesPlatform(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("platform: win32\n"), 0644))

	s, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, PlatformWin32, s.Platform)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("target: [unterminated\n"), 0644))
	_, err := Load(badYAML, true)
	require.Error(t, err)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, badYAML, zErr.Metadata()["path"])

	badPlatform := filepath.Join(dir, "platform.yaml")
	require.NoError(t, os.WriteFile(badPlatform, []byte("platform: sparc\n"), 0644))
	_, err = Load(badPlatform, true)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{in: "x64", want: PlatformX64},
		{in: "X64", want: PlatformX64},
		{in: "Win32", want: PlatformWin32},
		{in: "arm64", want: PlatformARM64},
		{in: "", want: PlatformNone},
		{in: "x86", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{name: "empty build folder", mutate: func(s *Settings) { s.BuildFolder = " " }, field: "build_folder"},
		{name: "current directory as build folder", mutate: func(s *Settings) { s.BuildFolder = "./" }, field: "build_folder"},
		{name: "parent directory as build folder", mutate: func(s *Settings) { s.BuildFolder = ".." }, field: "build_folder"},
		{name: "unknown platform", mutate: func(s *Settings) { s.Platform = "sparc" }, field: "platform"},
		{name: "unknown mode", mutate: func(s *Settings) { s.Mode = "RelWithDebInfo" }, field: "mode"},
		{name: "empty target", mutate: func(s *Settings) { s.Target = "" }, field: "target"},
		{name: "empty source dir", mutate: func(s *Settings) { s.SourceDir = "" }, field: "source_dir"},
		{name: "no extensions", mutate: func(s *Settings) { s.FormatExtensions = nil }, field: "format_extensions"},
		{name: "extension without dot", mutate: func(s *Settings) { s.FormatExtensions = []string{"cpp"} }, field: "format_extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			var cfgErr *errors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	t.Run("no platform is valid", func(t *testing.T) {
		s := Default()
		s.Platform = PlatformNone
		assert.NoError(t, s.Validate())
	})
}

func TestBuildLibValue(t *testing.T) {
	s := Default()
	assert.Equal(t, "OFF", s.BuildLibValue())
	s.BuildLib = true
	assert.Equal(t, "ON", s.BuildLibValue())
}
