// Package prompt asks the operator yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxAttempts bounds how often an unrecognized answer is asked again.
const maxAttempts = 3

// Confirmer implements ports.Confirmer.
type Confirmer struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

var _ ports.Confirmer = (*Confirmer)(nil)

// New creates a Confirmer. Non-interactive confirmers answer every question
// with its default without printing anything.
func New(in io.Reader, out io.Writer, interactive bool) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// Confirm asks question and returns the answer. An empty answer or the end of
// input selects defaultYes.
func (c *Confirmer) Confirm(question string, defaultYes bool) (bool, error) {
	if !c.interactive {
		return defaultYes, nil
	}

	choices := "[y/N]"
	if defaultYes {
		choices = "[Y/n]"
	}

	for range maxAttempts {
		if _, err := fmt.Fprintf(c.out, "%s %s ", question, choices); err != nil {
			return false, zerr.Wrap(err, "failed to write prompt")
		}

		answer, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, zerr.Wrap(err, "failed to read answer")
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			if errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(c.out)
			}
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return defaultYes, nil
		}
	}
	return defaultYes, nil
}
