package domain

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// BumpLevel selects which semantic version component a bump increments.
type BumpLevel string

const (
	// BumpPatch increments the patch component.
	BumpPatch BumpLevel = "patch"
	// BumpMinor increments the minor component and resets patch.
	BumpMinor BumpLevel = "minor"
	// BumpMajor increments the major component and resets minor and patch.
	BumpMajor BumpLevel = "major"
)

// ParseBumpLevel validates a bump level name. The empty string means patch.
func ParseBumpLevel(s string) (BumpLevel, error) {
	switch BumpLevel(s) {
	case "", BumpPatch:
		return BumpPatch, nil
	case BumpMinor, BumpMajor:
		return BumpLevel(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidBumpLevel, "unknown bump level"), "level", s)
	}
}

// NextVersion increments current according to level.
func NextVersion(current string, level BumpLevel) (string, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", current)
	}

	var next semver.Version
	switch level {
	case BumpMajor:
		next = v.IncMajor()
	case BumpMinor:
		next = v.IncMinor()
	case BumpPatch, "":
		next = v.IncPatch()
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidBumpLevel, "unknown bump level"), "level", string(level))
	}
	return next.String(), nil
}

// PublicationTag returns the VCS tag marking name at version as published.
func PublicationTag(name, version string) string {
	return name + "/v" + version
}

// PublicationTagPattern matches every publication tag of name.
func PublicationTagPattern(name string) string {
	return name + "/v*"
}

// ReleaseBranch is the branch a bump to version happens on.
func ReleaseBranch(version string) string {
	return "version-" + version
}

// CommitMessage is the message of the release commit for version.
func CommitMessage(version string) string {
	return "Publishing version " + version
}

// TagMessage is the annotation of a publication tag.
func TagMessage(tag string) string {
	return "Release " + tag
}
