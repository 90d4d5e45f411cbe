package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Workshop-inspired with semantic accents
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Material colors (terminal approximations of the drawing palette)
	ColorCarcass = lipgloss.Color("#C8A165")
	ColorBack    = lipgloss.Color("#8A7E66")
	ColorShelf   = lipgloss.Color("#D9B77F")
	ColorDrawer  = lipgloss.Color("#B98D54")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES - For the canvas/cutlist split view
// ══════════════════════════════════════════════════════════════════════════════

var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight)

	// FocusedPanelStyle is the style for the focused panel
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	// StatusBarStyle renders the one-line footer
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBgSubtle).
			Padding(0, 1)

	// WarningStyle highlights non-blocking advisories
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	// TitleStyle renders panel headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// RenderModeBadge returns a styled badge for the interaction mode.
func RenderModeBadge(mode string) string {
	var fg lipgloss.Color
	var label string

	switch mode {
	case "select":
		fg, label = ColorInfo, "SELECT"
	case "move":
		fg, label = ColorSuccess, "MOVE"
	case "resize":
		fg, label = ColorWarning, "RESIZE"
	default:
		fg, label = ColorMuted, "??????"
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(ColorBgHighlight).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
