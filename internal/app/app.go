// Package app implements the application layer for ship: the suite commands
// the CLI exposes, built on the planner and the release pipeline.
package app

import (
	"io"
	"os"

	"go.trai.ch/ship/internal/adapters/progress"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.trai.ch/ship/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.SuiteLoader
	settings  ports.SettingsLoader
	planner   *planner.Planner
	pipeline  *pipeline.Pipeline
	rectifier *pipeline.Rectifier
	vcs       ports.VersionControl
	runner    ports.CommandRunner
	logger    ports.Logger
	progress  progress.Factory

	out     io.Writer
	workdir string
}

// New creates a new App instance.
func New(
	loader ports.SuiteLoader,
	settings ports.SettingsLoader,
	plan *planner.Planner,
	pipe *pipeline.Pipeline,
	rectifier *pipeline.Rectifier,
	vcs ports.VersionControl,
	runner ports.CommandRunner,
	log ports.Logger,
	progressFactory progress.Factory,
) *App {
	return &App{
		loader:    loader,
		settings:  settings,
		planner:   plan,
		pipeline:  pipe,
		rectifier: rectifier,
		vcs:       vcs,
		runner:    runner,
		logger:    log,
		progress:  progressFactory,
		out:       os.Stdout,
	}
}

// WithOutput redirects tables and reports, which go to stdout by default.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkdir makes the App resolve the suite from dir instead of the
// process working directory.
func (a *App) WithWorkdir(dir string) *App {
	a.workdir = dir
	return a
}

// session is what every suite command starts from.
type session struct {
	suite    *domain.Suite
	settings domain.Settings
}

func (a *App) open() (*session, error) {
	dir := a.workdir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
		dir = wd
	}

	suite, err := a.loader.LoadSuite(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load suite")
	}
	settings, err := a.settings.Load(suite.Root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	if settings.LogFormat == "json" {
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(true)
		}
	}
	return &session{suite: suite, settings: settings}, nil
}

// jsonSwitcher is implemented by loggers able to emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}
