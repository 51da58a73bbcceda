package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/mythoscape/internal/creature"
)

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#B48EFF") // Violet — primary accent
	colorAccent     = lipgloss.Color("#FFD700") // Gold — bright glow, notices
	colorSuccess    = lipgloss.Color("#00E676") // Green — saved
	colorDanger     = lipgloss.Color("#FF5252") // Red — errors
	colorMuted      = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim = lipgloss.Color("#181825") // Darkest surface — footer bg
	colorSoft       = lipgloss.Color("#7FB3FF") // Blue — soft glow
	colorFlickering = lipgloss.Color("#FF8A3D") // Orange — flickering glow
	colorDim        = lipgloss.Color("#5A5A7A") // Slate — dim glow
)

// Selection indicator prepended to the active mood.
const selectionIndicator = "▎"

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)
)

// Content styles.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleText = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleMetaphor = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	styleMoodSelected = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleMoodNormal = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleCreatureBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 3)
)

// Notice styles by severity.
var (
	styleNoticeInfo = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleNoticeWarn = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleNoticeError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Footer styles — top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// glowColor picks the border colour for the creature box.
func glowColor(g creature.Glow) lipgloss.Color {
	switch g {
	case creature.GlowBright:
		return colorAccent
	case creature.GlowSoft:
		return colorSoft
	case creature.GlowFlickering:
		return colorFlickering
	default:
		return colorDim
	}
}
