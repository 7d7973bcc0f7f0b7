// Package runner executes shell commands and script files as child
// processes, streaming output live while capturing it, and converting
// cancellation into data instead of failure.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// DefaultGrace is how long a terminated child gets to exit cleanly before
// the forceful kill.
const DefaultGrace = 2 * time.Second

// Spec describes what to execute: either a shell command line or a script
// file with its interpreter.
type Spec struct {
	Command     string // shell command line, run through the configured shell
	Interpreter string // used with ScriptPath, e.g. "python3"
	ScriptPath  string
}

// ShellCommand returns a Spec for a raw command line
func ShellCommand(command string) Spec {
	return Spec{Command: command}
}

// ScriptFile returns a Spec for an interpreter plus script path
func ScriptFile(interpreter, path string) Spec {
	return Spec{Interpreter: interpreter, ScriptPath: path}
}

func (s Spec) String() string {
	if s.Command != "" {
		return s.Command
	}
	return s.Interpreter + " " + s.ScriptPath
}

// SpawnError indicates the child process could not be started at all.
// Distinct from a non-zero exit, which is reported on the Result.
type SpawnError struct {
	Spec Spec
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Spec, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Runner executes child processes. Stdout and Stderr are optional live
// sinks: when set, child output is forwarded to them as it arrives, in
// addition to being captured for the Result.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Shell  string        // shell for command lines
	Grace  time.Duration // termination grace before forceful kill
}

// New creates a runner attached to the current process's stdout/stderr,
// using the user's shell.
func New() *Runner {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Shell:  shell,
		Grace:  DefaultGrace,
	}
}

// Run executes spec. Cancelling ctx terminates the child (SIGTERM, then
// SIGKILL after the grace period) and is reported as Interrupted on the
// Result rather than as an error, so the caller stays alive to prompt
// again. Only a failure to launch returns an error.
func (r *Runner) Run(ctx context.Context, spec Spec) (*Result, error) {
	argv, err := r.argv(spec)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, r.Stdout)
	cmd.Stderr = tee(&stderr, r.Stderr)
	// Own process group, so termination reaches the shell's children too
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Spec: spec, Err: err}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	interrupted := false
	var waitErr error
	select {
	case waitErr = <-done:
	case <-ctx.Done():
		interrupted = true
		waitErr = r.terminate(cmd, done)
	}

	result := &Result{
		Stdout:      stdout.Bytes(),
		Stderr:      stderr.Bytes(),
		Interrupted: interrupted,
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// argv builds the command line for a spec
func (r *Runner) argv(spec Spec) ([]string, error) {
	switch {
	case spec.Command != "":
		shell := r.Shell
		if shell == "" {
			shell = "/bin/sh"
		}
		return []string{shell, "-c", spec.Command}, nil
	case spec.ScriptPath != "":
		interpreter := spec.Interpreter
		if interpreter == "" {
			interpreter = "python3"
		}
		return []string{interpreter, spec.ScriptPath}, nil
	default:
		return nil, fmt.Errorf("empty execution spec")
	}
}

// terminate asks the child's process group to exit and kills it after the
// grace period. Always returns within Grace plus the kernel's kill latency,
// so an interrupted Run never hangs.
func (r *Runner) terminate(cmd *exec.Cmd, done chan error) error {
	grace := r.Grace
	if grace <= 0 {
		grace = DefaultGrace
	}

	signalGroup(cmd, syscall.SIGTERM)

	select {
	case err := <-done:
		return err
	case <-time.After(grace):
		signalGroup(cmd, syscall.SIGKILL)
		return <-done
	}
}

// signalGroup signals the child's whole process group, falling back to the
// child alone when the group is gone already
func signalGroup(cmd *exec.Cmd, sig syscall.Signal) {
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		syscall.Kill(-pgid, sig)
		return
	}
	cmd.Process.Signal(sig)
}

// tee captures child output while forwarding it to an optional live sink
func tee(buf *bytes.Buffer, live io.Writer) io.Writer {
	if live == nil {
		return buf
	}
	return io.MultiWriter(buf, live)
}
