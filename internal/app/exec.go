package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExecOptions configures Exec.
type ExecOptions struct {
	// Args is the program and its arguments.
	Args []string
	// Shell joins Args into one line run by sh -c.
	Shell bool
	// Packages restricts the run to these names.
	Packages []string
}

// Exec runs a command in every package directory, dependencies first, and
// stops at the first failure. Output streams through the logger.
func (a *App) Exec(ctx context.Context, opts ExecOptions) error {
	if len(opts.Args) == 0 {
		return zerr.Wrap(domain.ErrMissingCommand, "give the command to run after --")
	}

	s, err := a.open()
	if err != nil {
		return err
	}
	ordered, _, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}
	targets, err := selectPackages(s.suite, ordered, opts.Packages)
	if err != nil {
		return err
	}

	args := opts.Args
	if opts.Shell {
		args = []string{"sh", "-c", strings.Join(opts.Args, " ")}
	}

	progress := a.progress(len(targets))
	defer progress.Finish()

	for _, pkg := range targets {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "execution interrupted")
		}
		cmd := &domain.Command{
			Dir:  pkg.Path,
			Args: args,
			Env: map[string]string{
				"SHIP_PACKAGE":         pkg.Name,
				"SHIP_PACKAGE_VERSION": pkg.Version,
			},
		}
		progress.Advance(1, "Running in "+pkg.Name)
		a.logger.Info(fmt.Sprintf("Running %q in %s", cmd.String(), pkg.Name))
		if err := a.runner.Run(ctx, cmd, nil); err != nil {
			return zerr.With(zerr.Wrap(err, "command failed in package"), "package", pkg.Name)
		}
	}

	a.logger.Info(fmt.Sprintf("Command ran in %d package(s).", len(targets)))
	return nil
}
