// Package main is the entry point for the ship release manager.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/cmd/ship/commands"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/core/domain"
	_ "go.trai.ch/ship/internal/wiring"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailed
	}
	defer cleanup()
	defer func() {
		if cerr := components.Close(); cerr != nil {
			_, _ = fmt.Fprintln(stderr, "Error: "+cerr.Error())
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	switcher, _ := components.Logger.(commands.JSONSwitcher)
	cli := commands.New(components.App, switcher)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Per-package failures were already reported.
		if errors.Is(err, domain.ErrReleaseFailed) {
			return exitFailed
		}
		components.Logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	for _, target := range []error{
		domain.ErrConfigNotFound,
		domain.ErrConfigReadFailed,
		domain.ErrConfigParseFailed,
		domain.ErrInvalidWorkdirType,
		domain.ErrConflictingOptions,
		domain.ErrInvalidBumpLevel,
		domain.ErrMissingCommand,
	} {
		if errors.Is(err, target) {
			return exitConfig
		}
	}
	return exitFailed
}
