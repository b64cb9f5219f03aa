// Package style provides the shared colors and icons used by CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Steel  = lipgloss.Color("#7D8590")
	Copper = lipgloss.Color("#E2725B")
	Green  = lipgloss.Color("#2EA043")
	Red    = lipgloss.Color("#CF222E")
	Yellow = lipgloss.Color("#D4A72C")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
