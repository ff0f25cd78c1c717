// Package output builds termenv outputs with the color profile used across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for the current session. NO_COLOR always
// wins. Interactive sessions detect the terminal's capabilities; CI logs get
// plain ANSI, which every log viewer understands.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !interactive {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// ColorProfile is the interactive profile.
func ColorProfile() termenv.Profile { return Profile(true) }

// ColorProfileANSI is the non-interactive profile.
func ColorProfileANSI() termenv.Profile { return Profile(false) }

// New creates a termenv.Output on w (stderr when nil) using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output on w with the profile returned by profileFn.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}
