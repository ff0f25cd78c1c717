// Package progress renders nested progress handles as percentage lines.
package progress

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/ui/output"
)

// line is the state shared by a root handle and all of its sub-ranges.
type line struct {
	mu       sync.Mutex
	out      *termenv.Output
	position float64
}

// render prints the position, which never moves backwards.
func (l *line) render(position float64, label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if position > l.position {
		l.position = min(position, 1)
	}
	pct := int(math.Floor(l.position*100 + 1e-9))
	prefix := l.out.String(fmt.Sprintf("[%3d%%]", pct)).Faint().String()
	_, _ = fmt.Fprintf(l.out, "%s %s\n", prefix, label)
}

// Reporter is a progress handle covering [start, end] of the overall run.
type Reporter struct {
	line  *line
	start float64
	end   float64
	total int

	mu    sync.Mutex
	done  int
	label string
}

var _ ports.ProgressReporter = (*Reporter)(nil)

// NewReporter creates a root handle of total units writing to w (stderr when nil).
func NewReporter(w io.Writer, total int) *Reporter {
	return newReporter(&line{out: output.New(w)}, 0, 1, total)
}

func newReporter(l *line, start, end float64, total int) *Reporter {
	return &Reporter{line: l, start: start, end: end, total: total}
}

// Advance moves forward by step units and prints label.
func (r *Reporter) Advance(step int, label string) {
	r.mu.Lock()
	r.done = min(r.done+step, r.total)
	r.label = label
	position := r.at(r.done)
	r.mu.Unlock()

	r.line.render(position, label)
}

// CreateSubRange returns a handle of total units spanning [start, end] of this handle's units.
func (r *Reporter) CreateSubRange(start, end float64, total int) ports.ProgressReporter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newReporter(r.line, r.atUnits(start), r.atUnits(end), total)
}

// Finish moves to the end of the handle's range.
func (r *Reporter) Finish() {
	r.mu.Lock()
	r.done = r.total
	label := r.label
	r.mu.Unlock()

	if label == "" {
		label = "done"
	}
	r.line.render(r.end, label)
}

// Position returns the overall position in [0, 1].
func (r *Reporter) Position() float64 {
	r.line.mu.Lock()
	defer r.line.mu.Unlock()
	return r.line.position
}

func (r *Reporter) at(done int) float64 {
	return r.atUnits(float64(done))
}

func (r *Reporter) atUnits(units float64) float64 {
	if r.total <= 0 {
		return r.end
	}
	ratio := min(max(units/float64(r.total), 0), 1)
	return r.start + (r.end-r.start)*ratio
}

// Nop is a ProgressReporter that reports nothing.
type Nop struct{}

var _ ports.ProgressReporter = Nop{}

// Advance does nothing.
func (Nop) Advance(int, string) {}

// CreateSubRange returns another Nop.
func (Nop) CreateSubRange(float64, float64, int) ports.ProgressReporter { return Nop{} }

// Finish does nothing.
func (Nop) Finish() {}

// Factory creates the root handle of a command with total units.
type Factory func(total int) ports.ProgressReporter

// NewFactory renders progress to w in interactive sessions and stays silent
// otherwise.
func NewFactory(w io.Writer, interactive bool) Factory {
	return func(total int) ports.ProgressReporter {
		if !interactive {
			return Nop{}
		}
		return NewReporter(w, total)
	}
}
