package errors

import (
	"errors"
	"fmt"
)

// Error types for better error handling and user feedback

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Hint    string
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("config error: %s - %s\nHint: %s", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("config error: %s - %s", e.Field, e.Message)
}

// NewConfigError creates a new config error
func NewConfigError(field, message, hint string) *ConfigError {
	return &ConfigError{Field: field, Message: message, Hint: hint}
}

// Build phases reported by BuildError
const (
	PhaseClean    = "clean"
	PhaseGenerate = "generate"
	PhaseBuild    = "build"
	PhaseFormat   = "format"
)

// BuildError represents a failed orchestration step
type BuildError struct {
	Phase   string // clean, generate, build, format
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Phase, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Phase, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// NewBuildError creates a new build error
func NewBuildError(phase, message string, cause error) *BuildError {
	return &BuildError{Phase: phase, Message: message, Cause: cause}
}

// ToolError represents external tool-related errors
type ToolError struct {
	Tool       string
	Message    string
	InstallCmd string
}

func (e *ToolError) Error() string {
	if e.InstallCmd != "" {
		return fmt.Sprintf("%s: %s\nInstall with: %s", e.Tool, e.Message, e.InstallCmd)
	}
	return fmt.Sprintf("%s: %s", e.Tool, e.Message)
}

// NewToolError creates a new tool error
func NewToolError(tool, message, installCmd string) *ToolError {
	return &ToolError{Tool: tool, Message: message, InstallCmd: installCmd}
}

// Common errors
var (
	ErrBuildFolderMissing = errors.New("build folder does not exist")
	ErrUnknownAction      = errors.New("unknown action")
	ErrMissingAction      = errors.New("missing action")
)

// IsConfigError checks if error is a config error
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
