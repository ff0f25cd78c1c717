package domain

import (
	"fmt"

	"go.trai.ch/zerr"
	"go.uber.org/multierr"
)

// Step is one stage of the per-package release pipeline.
type Step int

const (
	// StepBump switches to the release branch and writes the new version.
	StepBump Step = iota
	// StepRectify reconciles the package files against their declared state.
	StepRectify
	// StepCommit commits and pushes the release changes.
	StepCommit
	// StepPropagate pins the new version in every dependent package.
	StepPropagate
	// StepPublish uploads the package, tags it and merges to the main branch.
	StepPublish
)

// Steps lists the pipeline stages in execution order.
var Steps = []Step{StepBump, StepRectify, StepCommit, StepPropagate, StepPublish}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// StepStatus is the lifecycle state of a pipeline step.
type StepStatus string

const (
	// StatusPending marks a step that has not run yet.
	StatusPending StepStatus = "pending"
	// StatusDone marks a step that ran successfully.
	StatusDone StepStatus = "done"
	// StatusSkipped marks a step whose skip condition held.
	StatusSkipped StepStatus = "skipped"
	// StatusFailed marks a step that returned an error.
	StatusFailed StepStatus = "failed"
)

// ReleaseItem tracks one package through the pipeline.
type ReleaseItem struct {
	Package *Package
	// FromVersion is the version before the bump.
	FromVersion string
	steps       [len(stepNames)]StepStatus
	Err         error
}

var stepNames = [...]string{"bump", "rectify", "commit", "propagate", "publish"}

// NewReleaseItem creates an item with every step pending.
func NewReleaseItem(pkg *Package) *ReleaseItem {
	item := &ReleaseItem{Package: pkg, FromVersion: pkg.Version}
	for i := range item.steps {
		item.steps[i] = StatusPending
	}
	return item
}

// Status returns the status of step.
func (i *ReleaseItem) Status(step Step) StepStatus {
	return i.steps[step]
}

// Set records the status of step.
func (i *ReleaseItem) Set(step Step, status StepStatus) {
	i.steps[step] = status
}

// Fail marks step as failed and records err.
func (i *ReleaseItem) Fail(step Step, err error) {
	i.steps[step] = StatusFailed
	i.Err = zerr.With(zerr.With(zerr.Wrap(err, "release step failed"), "package", i.Package.Name), "step", step.String())
}

// ReleasePlan is the ordered list of packages a release works through.
// It lives for one command invocation.
type ReleasePlan struct {
	Items    []*ReleaseItem
	Warnings []error
}

// NewReleasePlan creates a plan for pkgs, preserving their order.
func NewReleasePlan(pkgs []*Package) *ReleasePlan {
	plan := &ReleasePlan{Items: make([]*ReleaseItem, 0, len(pkgs))}
	for _, p := range pkgs {
		plan.Items = append(plan.Items, NewReleaseItem(p))
	}
	return plan
}

// Warn records a non-fatal condition.
func (p *ReleasePlan) Warn(err error) {
	p.Warnings = append(p.Warnings, err)
}

// Err combines the errors of every failed item, or returns nil.
func (p *ReleasePlan) Err() error {
	var errs error
	for _, item := range p.Items {
		if item.Err != nil {
			errs = multierr.Append(errs, item.Err)
		}
	}
	return errs
}
