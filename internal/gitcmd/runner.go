package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes git commands with shared logging and output handling.
type Runner struct {
	Dir    string
	Env    []string
	Logger *slog.Logger
}

// Result contains captured stdout/stderr for a git command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

// WithDir returns a copy of the runner that runs commands in dir.
func (r Runner) WithDir(dir string) Runner {
	r.Dir = dir
	return r
}

// WithEnv returns a copy of the runner with env appended
// to the environment of every command it runs.
func (r Runner) WithEnv(env ...string) Runner {
	merged := make([]string, 0, len(r.Env)+len(env))
	merged = append(merged, r.Env...)
	merged = append(merged, env...)
	r.Env = merged
	return r
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	return r
}

func (r Runner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func (r Runner) prepare(ctx context.Context, args []string) *exec.Cmd {
	r = r.withDefaults()
	r.Logger.Debug("Running: git "+strings.Join(args, " "), "dir", r.Dir)
	return r.command(ctx, args...)
}

// Run executes a git command and captures stdout/stderr.
func (r Runner) Run(ctx context.Context, args ...string) (Result, error) {
	return r.run(ctx, nil, args)
}

// RunInput executes a git command with stdin fed from input
// and captures stdout/stderr.
func (r Runner) RunInput(ctx context.Context, input string, args ...string) (Result, error) {
	return r.run(ctx, strings.NewReader(input), args)
}

func (r Runner) run(ctx context.Context, stdin io.Reader, args []string) (Result, error) {
	cmd := r.prepare(ctx, args)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}

// ExitCode reports the exit status of a failed git command,
// or -1 if err does not carry one.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
