package render

import "github.com/charmbracelet/lipgloss"

// Semantic colors for walk outcomes and map glyphs.
var (
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#7F8C8D")
	colorAccent  = lipgloss.Color("#3498DB")
)

// styles holds the pre-configured lipgloss styles applied when output is
// styled. Unstyled rendering never touches them.
var styles = struct {
	Corner  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Start   lipgloss.Style
	Stop    lipgloss.Style
	Turn    lipgloss.Style
	Go      lipgloss.Style
}{
	Corner:  lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Start:   lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
	Stop:    lipgloss.NewStyle().Foreground(colorError),
	Turn:    lipgloss.NewStyle().Foreground(colorWarning),
	Go:      lipgloss.NewStyle().Foreground(colorAccent),
}
