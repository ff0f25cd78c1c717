// Package style holds the colors and markers of the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Log level colors.
var (
	Slate  = lipgloss.Color("#64748B")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Level markers.
const (
	Cross   = "✗"
	Warning = "!"
)
