// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// StatusColor returns the color used for a transform status name.
func StatusColor(status string) lipgloss.Color {
	if status == "cached" {
		return Slate
	}
	return Cyan
}

// Bold renders s in bold with the given color.
func Bold(color lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(s)
}
