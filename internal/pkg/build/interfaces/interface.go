// Package build provides the process execution contract used by the orchestrator.
//
// Every external tool (cmake, clang-format) is reached through a Runner so the
// orchestration steps can be exercised without the tools installed.
package build

import (
	"context"
	"strings"
)

// Runner executes external commands.
//
//go:generate mockgen -source=interface.go -destination=../mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd and blocks until it exits.
	// It returns nil if and only if the process exited with status zero.
	Run(ctx context.Context, cmd Command) error
}

// Command is a single external tool invocation.
type Command struct {
	// Name is the executable, looked up in PATH.
	Name string

	// Args are passed to the executable verbatim; no shell is involved.
	Args []string

	// Dir is the working directory of the process. Empty means the current directory.
	Dir string

	// Progress renders "[ NN%]" output lines as a progress bar and holds back
	// everything else unless the command fails.
	Progress bool
}

// String renders the command line for logging, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
