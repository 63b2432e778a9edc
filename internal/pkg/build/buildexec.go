package build

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	iface "github.com/ozacod/automation/internal/pkg/build/interfaces"
	xerrors "github.com/ozacod/automation/pkg/errors"
)

// Variables for mocking in tests
var (
	execCommand = exec.CommandContext
	// waitDelay bounds how long Run waits on output pipes held open by the tool's children
	waitDelay = 5 * time.Second
)

var progressRe = regexp.MustCompile(`^\[\s*\d+%]`)

// ExecRunner runs commands as real subprocesses
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner streaming tool output to stdout and stderr
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run executes c and waits for it. A non-zero exit status is returned as an error.
func (r *ExecRunner) Run(ctx context.Context, c iface.Command) error {
	cmd := execCommand(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay

	var err error
	if c.Progress {
		err = r.runWithProgress(cmd)
	} else {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
		err = cmd.Run()
	}

	if errors.Is(err, exec.ErrNotFound) {
		return xerrors.NewToolError(c.Name, "not found in PATH", InstallHint(c.Name))
	}
	return err
}

// runWithProgress streams only progress lines like "[ 93%]" into a progress bar.
// Everything else is printed if the command fails.
func (r *ExecRunner) runWithProgress(cmd *exec.Cmd) error {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(r.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("[cyan]Compiling[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[cyan]█[reset]",
			SaucerHead:    "[cyan]▸[reset]",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return err
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- cmd.Wait()
		pw.Close()
	}()

	var nonProgress bytes.Buffer
	lastPercent := -1

	sc := bufio.NewScanner(pr)
	sc.Buffer(make([]byte, 0, 64*1024), 512*1024)
	for sc.Scan() {
		line := sc.Text()
		if match := progressRe.FindString(line); match != "" {
			pct := extractPercent(match)
			if pct >= 0 && pct != lastPercent {
				_ = bar.Set(pct)
				lastPercent = pct
			}
			continue
		}
		nonProgress.WriteString(line)
		nonProgress.WriteByte('\n')
	}
	// drain whatever the scanner gave up on so the child never blocks on a full pipe
	_, _ = io.Copy(io.Discard, pr)

	err := <-waitCh

	_ = bar.Set(100)
	_ = bar.Clear()

	if err != nil && nonProgress.Len() > 0 {
		fmt.Fprint(r.Stderr, nonProgress.String())
	}
	return err
}

func extractPercent(line string) int {
	// line format: [ 93%] ...
	start := strings.Index(line, "[")
	end := strings.Index(line, "%")
	if start == -1 || end == -1 || end <= start {
		return -1
	}
	var pct int
	if _, err := fmt.Sscanf(strings.TrimSpace(line[start+1:end]), "%d", &pct); err != nil {
		return -1
	}
	return pct
}

// InstallHint suggests how to install a missing tool, or "" when unknown
func InstallHint(tool string) string {
	switch tool {
	case "cmake":
		switch runtime.GOOS {
		case "darwin":
			return "brew install cmake"
		case "windows":
			return "winget install Kitware.CMake"
		default:
			return "sudo apt install cmake"
		}
	case "clang-format":
		switch runtime.GOOS {
		case "darwin":
			return "brew install clang-format"
		case "windows":
			return "winget install LLVM.LLVM"
		default:
			return "sudo apt install clang-format"
		}
	}
	return ""
}
