// Package shell runs external programs for the git and registry adapters.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd. Output lines go to the logger, stdout lines as info and
// stderr lines as errors, and are copied to stdout when it is non-nil.
func (r *Runner) Run(ctx context.Context, cmd *domain.Command, stdout io.Writer) error {
	stdoutLog := &logWriter{logger: r.logger, level: levelInfo}
	stderrLog := &logWriter{logger: r.logger, level: levelError}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	var out, errOut io.Writer = stdoutLog, stderrLog
	if stdout != nil {
		out = io.MultiWriter(stdoutLog, stdout)
		errOut = io.MultiWriter(stderrLog, stdout)
	}
	return run(ctx, cmd, out, errOut)
}

// Output executes cmd and returns its standard output. Standard error is
// attached to the returned error as metadata.
func (r *Runner) Output(ctx context.Context, cmd *domain.Command) (string, error) {
	var stdout, stderr bytes.Buffer
	if err := run(ctx, cmd, &stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

func run(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if len(cmd.Args) == 0 {
		return zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // argv comes from manifests and the git adapter
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", cmd.String())
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}

type level int

const (
	levelInfo level = iota
	levelError
)

// logWriter turns a byte stream into one log call per line.
type logWriter struct {
	logger ports.Logger
	level  level
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == levelInfo {
		w.logger.Info(msg)
		return
	}
	w.logger.Error(zerr.New(msg))
}

// allowListedEnvVars are the system variables inherited by child processes.
var allowListedEnvVars = map[string]struct{}{
	"HOME":            {},
	"TERM":            {},
	"USER":            {},
	"PATH":            {},
	"LANG":            {},
	"SSH_AUTH_SOCK":   {},
	"GIT_SSH_COMMAND": {},
}

// resolveEnvironment keeps the allow-listed system variables and applies overrides.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	env := make(map[string]string, len(allowListedEnvVars)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			env[k] = v
		}
	}
	for k, v := range overrides {
		env[k] = v
	}

	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}
