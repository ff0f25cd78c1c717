// Package detector tells interactive terminal sessions apart from CI and piped runs.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Session describes how ship was started.
type Session struct {
	// TTY is true when both stdin and stderr are terminals.
	TTY bool
	// CI is true when a CI environment variable is set.
	CI bool
}

// Interactive reports whether the operator can answer prompts.
func (s Session) Interactive() bool {
	return s.TTY && !s.CI
}

// DetectSession inspects the process environment.
func DetectSession() Session {
	return Session{
		TTY: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd())),
		CI:  IsCI(os.Getenv),
	}
}

// IsCI reports whether getenv exposes a CI marker.
func IsCI(getenv func(string) string) bool {
	ci := getenv("CI")
	return ci == "true" || ci == "1"
}
