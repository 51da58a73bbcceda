package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab identifies one of the four journal views.
type Tab int

const (
	// TabJournal is the new-entry form (default).
	TabJournal Tab = iota
	// TabMap lists entries oldest first as regions of the inner landscape.
	TabMap
	// TabCreature shows the soul creature and its glow animation.
	TabCreature
	// TabArchive lists past entries newest first.
	TabArchive
)

// tabCount is the total number of tabs.
const tabCount = 4

// tabLabels maps each tab to its display label.
var tabLabels = [tabCount]string{
	TabJournal:  "📖 journal",
	TabMap:      "🗺️ map",
	TabCreature: "🦋 creature",
	TabArchive:  "📚 archive",
}

// Label returns the display label for a tab.
func (t Tab) Label() string {
	if int(t) >= 0 && int(t) < tabCount {
		return tabLabels[t]
	}
	return "unknown"
}

// Next cycles forward to the next tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % tabCount)
}

// Prev cycles backward to the previous tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + tabCount - 1) % tabCount)
}

// TabFromNumber converts a 1-based number key to a Tab.
// Returns the tab and true if valid, or TabJournal and false otherwise.
func TabFromNumber(n int) (Tab, bool) {
	idx := n - 1
	if idx >= 0 && idx < tabCount {
		return Tab(idx), true
	}
	return TabJournal, false
}

// TabBar renders a horizontal row of tab labels.
type TabBar struct {
	ActiveTab Tab
	Width     int
}

// View renders the tab bar as a single styled line.
func (tb TabBar) View() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	var parts []string
	for i := 0; i < tabCount; i++ {
		tab := Tab(i)
		label := fmt.Sprintf("[%d] %s", i+1, tab.Label())
		if tab == tb.ActiveTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(line)
}
