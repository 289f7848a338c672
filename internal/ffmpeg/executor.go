package ffmpeg

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
)

const stderrTailLines = 8

// Executor runs one built command to completion. Implementations must block
// until the process exits.
type Executor interface {
	Execute(cmd Command, verbose bool) ExecResult
}

// ExecResult holds the outcome of a single ffmpeg invocation. Err is nil,
// a *SpawnError, or an *ExitError.
type ExecResult struct {
	ExitCode int
	Stderr   string
	Err      error
}

// ExecRunner executes commands with os/exec. Stdin, Stdout and Stderr
// default to the process's own streams and are only used in verbose mode.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Execute runs cmd synchronously. In verbose mode ffmpeg's stdout is
// streamed and its stderr tee'd live; otherwise stdout is discarded and
// stderr captured silently for error reporting. Only verbose mode connects
// stdin, where the overwrite prompt is visible and can be answered; a quiet
// child reads from the null device, so ffmpeg declines to overwrite and exits.
func (r *ExecRunner) Execute(cmd Command, verbose bool) ExecResult {
	c := exec.Command(cmd.Program, cmd.Args...)

	var stderrBuf bytes.Buffer
	if verbose {
		c.Stdin = r.Stdin
		c.Stdout = r.Stdout
		c.Stderr = io.MultiWriter(&stderrBuf, r.Stderr)
	} else {
		c.Stdout = io.Discard
		c.Stderr = &stderrBuf
	}

	err := c.Run()
	stderr := stderrBuf.String()
	if err == nil {
		return ExecResult{Stderr: stderr}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExecResult{
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err: &ExitError{
				Program:  cmd.Program,
				ExitCode: exitErr.ExitCode(),
				Stderr:   tailLines(stderr, stderrTailLines),
				Hint:     Diagnose(stderr),
				Err:      err,
			},
		}
	}
	return ExecResult{
		ExitCode: -1,
		Stderr:   stderr,
		Err:      &SpawnError{Program: cmd.Program, Err: err},
	}
}
