package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleLogoWing = lipgloss.NewStyle().Foreground(colorPrimary)
	styleLogoName = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Logo returns the single-line wordmark for the status bar. Background is
// inherited from the parent container.
func Logo() string {
	return styleLogoWing.Render("🦋") + styleLogoName.Render(" MYTHOSCAPE")
}

// LogoPlain returns the unstyled wordmark.
func LogoPlain() string {
	return "🦋 MYTHOSCAPE"
}
