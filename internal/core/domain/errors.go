package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrCycleDetected is returned when the dependency map contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDependencyViolation is returned when a package imports another local package without a declared path to it.
	ErrDependencyViolation = zerr.New("dependency violation")

	// ErrRemoteOperationFailed is returned when a push, pull or tag push against a remote fails.
	ErrRemoteOperationFailed = zerr.New("remote operation failed")

	// ErrInvalidWorkdirType is returned when a command runs against the wrong kind of workdir.
	ErrInvalidWorkdirType = zerr.New("invalid workdir type")

	// ErrUncommittedChanges is the warning raised when changes exist but committing was not confirmed.
	ErrUncommittedChanges = zerr.New("uncommitted changes")

	// ErrStabilizationNonConvergence is the warning raised when the publish plan did not settle.
	ErrStabilizationNonConvergence = zerr.New("publish plan did not stabilize")

	// ErrConfigNotFound is returned when no suite or package configuration can be found.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrMissingPackageName is returned when a manifest does not name its package.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrInvalidPackageName is returned when a package name contains invalid characters.
	ErrInvalidPackageName = zerr.New("package name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrDuplicatePackageName is returned when two packages of a suite share a name.
	ErrDuplicatePackageName = zerr.New("duplicate package name")

	// ErrPackageNotFound is returned when a named package is not part of the suite.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrManifestNotFound is returned when a package directory holds no supported manifest.
	ErrManifestNotFound = zerr.New("package manifest not found")

	// ErrManifestReadFailed is returned when a manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when a manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestWriteFailed is returned when a manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write package manifest")

	// ErrInvalidVersion is returned when a version is not a valid semantic version.
	ErrInvalidVersion = zerr.New("invalid semantic version")

	// ErrInvalidBumpLevel is returned for an unknown bump level.
	ErrInvalidBumpLevel = zerr.New("invalid bump level, expected 'patch', 'minor' or 'major'")

	// ErrConflictingOptions is returned when mutually exclusive options are combined.
	ErrConflictingOptions = zerr.New("conflicting options")

	// ErrStoreCreateFailed is returned when the registry directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create registry directory")

	// ErrStoreReadFailed is returned when the registry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read registry")

	// ErrStoreUnmarshalFailed is returned when the registry cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal registry")

	// ErrStoreMarshalFailed is returned when the registry cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal registry")

	// ErrStoreWriteFailed is returned when the registry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write registry")

	// ErrRegistryLocked is returned when another invocation holds the registry lock.
	ErrRegistryLocked = zerr.New("registry is locked by another invocation")

	// ErrPublishCommandMissing is returned when a package declares no publish command.
	ErrPublishCommandMissing = zerr.New("package declares no publish command")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrRectifyLoopLimit is the warning raised when a rectify loop stops before converging.
	ErrRectifyLoopLimit = zerr.New("rectify loop limit reached")

	// ErrReleaseFailed is returned when at least one package of a release failed.
	ErrReleaseFailed = zerr.New("release failed")

	// ErrMissingCommand is returned when exec is given no command.
	ErrMissingCommand = zerr.New("missing command")
)

func packageNotFound(name string) error {
	return zerr.With(zerr.Wrap(ErrPackageNotFound, "unknown package"), "package", name)
}

// CycleError reports a dependency cycle. Cycle starts and ends with the same name.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return ErrCycleDetected.Error() + ": " + strings.Join(e.Cycle, " -> ")
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// ImportLocation is a source position where one package references another.
type ImportLocation struct {
	File string
	Line int
	Col  int
}

func (l ImportLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// DependencyViolation reports a package importing code from another local
// package without any declared dependency path between them.
type DependencyViolation struct {
	Importer  string
	Imported  string
	Locations []ImportLocation
	Hint      string
}

// NewDependencyViolation builds a violation with its remediation hint.
func NewDependencyViolation(importer, imported string, locations []ImportLocation) *DependencyViolation {
	return &DependencyViolation{
		Importer:  importer,
		Imported:  imported,
		Locations: locations,
		Hint: fmt.Sprintf(
			"add %q to the dependencies of %q, or declare an intermediate local package that depends on %q",
			imported, importer, imported,
		),
	}
}

func (e *DependencyViolation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: package %q imports code from %q but there is no declared local dependency path",
		ErrDependencyViolation.Error(), e.Importer, e.Imported)
	for _, loc := range e.Locations {
		b.WriteString("\n  at " + loc.String())
	}
	if e.Hint != "" {
		b.WriteString("\nhint: " + e.Hint)
	}
	return b.String()
}

func (e *DependencyViolation) Unwrap() error { return ErrDependencyViolation }

// RemoteOperationError reports a failed interaction with a VCS remote.
type RemoteOperationError struct {
	Path      string
	Package   string
	Operation string
	Remote    string
	Branch    string
	Err       error
}

func (e *RemoteOperationError) Error() string {
	msg := fmt.Sprintf("%s: %s on remote %q", ErrRemoteOperationFailed.Error(), e.Operation, e.Remote)
	if e.Branch != "" {
		msg += fmt.Sprintf(" (branch %q)", e.Branch)
	}
	if e.Package != "" {
		msg += fmt.Sprintf(" for package %q", e.Package)
	}
	msg += " in " + e.Path
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteOperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteOperationFailed}
	}
	return []error{ErrRemoteOperationFailed, e.Err}
}

// WorkdirKind tags what a directory is to ship.
type WorkdirKind string

const (
	// WorkdirSuite is a directory holding a suite work file.
	WorkdirSuite WorkdirKind = "suite"
	// WorkdirPackage is a directory holding a package manifest.
	WorkdirPackage WorkdirKind = "package"
	// WorkdirUnknown is any other directory.
	WorkdirUnknown WorkdirKind = "unknown"
)

// InvalidWorkdirType reports a command invoked against the wrong kind of workdir.
type InvalidWorkdirType struct {
	Path         string
	Expected     WorkdirKind
	Actual       WorkdirKind
	NearestSuite string
}

func (e *InvalidWorkdirType) Error() string {
	msg := fmt.Sprintf("the workdir %s is of type %s and not %s", e.Path, e.Actual, e.Expected)
	if hint := e.Hint(); hint != "" {
		msg += "; " + hint
	}
	return msg
}

// Hint points at the nearest suite, if one was found.
func (e *InvalidWorkdirType) Hint() string {
	if e.NearestSuite == "" {
		return ""
	}
	return "the nearest suite is " + e.NearestSuite
}

func (e *InvalidWorkdirType) Unwrap() error { return ErrInvalidWorkdirType }

// UncommittedChangesBlock is a warning: a phase stopped because changes exist
// and committing them was not confirmed.
type UncommittedChangesBlock struct {
	Package string
	Phase   string
}

func (e *UncommittedChangesBlock) Error() string {
	target := "the suite"
	if e.Package != "" {
		target = fmt.Sprintf("package %q", e.Package)
	}
	return fmt.Sprintf("%s in %s, %s skipped. Re-run with --yes to commit them",
		ErrUncommittedChanges.Error(), target, e.Phase)
}

func (e *UncommittedChangesBlock) Unwrap() error { return ErrUncommittedChanges }

// StabilizationNonConvergence is a warning: the publish set kept changing for
// MaxLoops iterations. Last is the set the release proceeds with.
type StabilizationNonConvergence struct {
	MaxLoops int
	Last     []string
}

func (e *StabilizationNonConvergence) Error() string {
	return fmt.Sprintf("%s after %d loop(s), proceeding with [%s]",
		ErrStabilizationNonConvergence.Error(), e.MaxLoops, strings.Join(e.Last, ", "))
}

func (e *StabilizationNonConvergence) Unwrap() error { return ErrStabilizationNonConvergence }
