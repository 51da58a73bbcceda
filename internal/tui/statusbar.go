package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/mythoscape/internal/creature"
)

// StatusBar renders the persistent top bar with the journal totals.
type StatusBar struct {
	Entries int
	Stats   creature.Stats
	Width   int
}

// View renders the status bar as a single line. Narrow terminals drop the
// labels and keep only the values.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	const barPadding = 2
	innerWidth := s.Width - barPadding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barBg := lipgloss.NewStyle().Background(colorSurface)
	left := Logo()

	glowStyle := lipgloss.NewStyle().Background(colorSurface).Foreground(glowColor(s.Stats.Glow))
	var segments []string
	if compact {
		segments = []string{
			styleStatusValue.Render(fmt.Sprintf("%d✎", s.Entries)),
			styleStatusValue.Render(fmt.Sprintf("%dw", s.Stats.Wings)),
			styleStatusValue.Render(fmt.Sprintf("%ds", s.Stats.Scars)),
			glowStyle.Render(string(s.Stats.Glow)),
		}
	} else {
		segments = []string{
			styleStatusLabel.Render("entries ") + styleStatusValue.Render(fmt.Sprint(s.Entries)),
			styleStatusLabel.Render("wings ") + styleStatusValue.Render(fmt.Sprint(s.Stats.Wings)),
			styleStatusLabel.Render("scars ") + styleStatusValue.Render(fmt.Sprint(s.Stats.Scars)),
			styleStatusLabel.Render("glow ") + glowStyle.Render(string(s.Stats.Glow)),
		}
	}
	right := strings.Join(segments, barBg.Render("  "))

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styleStatusBar.Width(s.Width).Render(left + barBg.Render(strings.Repeat(" ", gap)) + right)
}
