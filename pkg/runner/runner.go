// Package runner executes external commands for the sandbox backends. All
// docker/kubectl invocations in the codebase flow through here so that command
// execution can be globally disabled (dry-run) and uniformly logged.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Default cap on captured output per command. Sandbox commands can emit
// unbounded output; everything past the cap is dropped and flagged.
const DefaultMaxOutputBytes = 1 << 20 // 1 MiB

// Options controls a single command execution.
type Options struct {
	// Dir is the working directory for the command.
	Dir string
	// Env entries in KEY=VALUE form, appended to the inherited environment.
	Env []string
	// Stdin is piped to the command when non-nil (kubectl apply -f - uses it).
	Stdin io.Reader
	// Stream receives each output line as it is produced, in addition to the
	// captured result. May be nil.
	Stream func(line string)
	// AllowFailure suppresses CommandFailedError for non-zero exits; the
	// result still carries the exit code and output.
	AllowFailure bool
	// Timeout bounds the command; zero means the caller's context governs.
	Timeout time.Duration
	// MaxOutputBytes caps captured output; zero means DefaultMaxOutputBytes.
	MaxOutputBytes int
}

// Result is the outcome of a completed command.
type Result struct {
	ExitCode  int
	Output    string
	Truncated bool
	Duration  time.Duration
}

// CommandFailedError is returned when a command exits non-zero and the caller
// did not opt into AllowFailure.
type CommandFailedError struct {
	Argv     []string
	ExitCode int
	Output   string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %q exited with code %d: %s",
		strings.Join(e.Argv, " "), e.ExitCode, tail(e.Output, 512))
}

// Runner executes argv vectors. The zero value is not usable; construct with
// New.
type Runner struct {
	logger  *slog.Logger
	execute bool
}

// New creates a Runner. When execute is false every Run call is a dry-run:
// the command is logged and an empty success result is returned. The gate is
// process-wide so tests and review environments never spawn docker/kubectl.
func New(execute bool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger, execute: execute}
}

// Executing reports whether the runner actually spawns processes.
func (r *Runner) Executing() bool {
	return r.execute
}

// Run executes argv with the given options. Stderr is merged into stdout so
// callers see output in emission order. The first argv element is the binary;
// no shell interpretation happens here.
func (r *Runner) Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	if !r.execute {
		r.logger.Info("dry-run: skipping command execution",
			"command", strings.Join(argv, " "))
		return &Result{}, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	maxBytes := opts.MaxOutputBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxOutputBytes
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}
	cmd.Stdin = opts.Stdin

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	start := time.Now()
	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		_ = pr.Close()
		return nil, fmt.Errorf("failed to start %q: %w", argv[0], err)
	}

	var buf bytes.Buffer
	truncated := false
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if opts.Stream != nil {
				opts.Stream(line)
			}
			if buf.Len() < maxBytes {
				if buf.Len()+len(line)+1 > maxBytes {
					truncated = true
					buf.WriteString(line[:maxBytes-buf.Len()])
				} else {
					buf.WriteString(line)
					buf.WriteByte('\n')
				}
			} else {
				truncated = true
			}
		}
	}()

	waitErr := cmd.Wait()
	_ = pw.Close()
	<-done
	_ = pr.Close()

	result := &Result{
		ExitCode:  cmd.ProcessState.ExitCode(),
		Output:    buf.String(),
		Truncated: truncated,
		Duration:  time.Since(start),
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("command %q timed out after %s: %w",
			argv[0], result.Duration.Round(time.Millisecond), ctx.Err())
	}

	if waitErr != nil {
		if _, ok := waitErr.(*exec.ExitError); !ok {
			return result, fmt.Errorf("command %q failed: %w", argv[0], waitErr)
		}
		if !opts.AllowFailure {
			return result, &CommandFailedError{
				Argv:     argv,
				ExitCode: result.ExitCode,
				Output:   result.Output,
			}
		}
	}

	r.logger.Debug("command completed",
		"command", argv[0],
		"exit_code", result.ExitCode,
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}
