package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/mythoscape/internal/journal"
)

// View renders the full screen: status bar, tabs, active view, notice, footer.
func (m Model) View() string {
	state := m.session.State()

	bar := StatusBar{Entries: len(state.Entries), Stats: state.CreatureStats, Width: m.Width}
	tabs := TabBar{ActiveTab: m.Tab, Width: m.Width}

	var body string
	switch m.Tab {
	case TabJournal:
		body = m.journalView()
	case TabCreature:
		body = m.creatureView()
	default:
		body = m.scroll.View()
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	bindings := BrowseFooterBindings(m.Keys)
	if m.Tab == TabJournal {
		bindings = JournalFooterBindings(m.Keys)
	}
	footer := Footer{Width: m.Width, Bindings: bindings}

	return lipgloss.JoinVertical(lipgloss.Left,
		bar.View(),
		tabs.View(),
		body,
		m.noticeView(),
		footer.View(),
	)
}

// journalView renders the entry form: mood picker, editor and the last metaphor.
func (m Model) journalView() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("📝 New Journal Entry"))
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render("How are you feeling today?"))
	b.WriteString("\n")
	b.WriteString(m.moodPicker())
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	if m.LastEntry != nil {
		b.WriteString("\n\n")
		b.WriteString(styleMetaphor.Render("🌟 " + m.LastEntry.Metaphor))
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// moodPicker renders the moods in a row with the selection marked.
func (m Model) moodPicker() string {
	parts := make([]string, len(m.moods))
	for i, md := range m.moods {
		if i == m.moodIdx {
			parts[i] = styleSelectionIndicator.Render(selectionIndicator) + styleMoodSelected.Render(md.Label())
		} else {
			parts[i] = " " + styleMoodNormal.Render(md.Label())
		}
	}
	return strings.Join(parts, "  ")
}

// creatureView renders the creature box with the current animation frame.
func (m Model) creatureView() string {
	stats := m.session.Creature()

	box := styleCreatureBox.BorderForeground(glowColor(stats.Glow)).Render(m.anim.Frame(m.frame))

	var b strings.Builder
	b.WriteString(styleTitle.Render("🦋 Your Soul Creature"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("This ethereal being mirrors your inner growth."))
	b.WriteString("\n\n")
	b.WriteString(box)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", styleHeading.Render("Wings:"), styleText.Render(stats.WingsLabel()))
	fmt.Fprintf(&b, "%s  %s\n", styleHeading.Render("Glow:"), lipgloss.NewStyle().Foreground(glowColor(stats.Glow)).Render(stats.Glow.Title()))
	fmt.Fprintf(&b, "%s %s", styleHeading.Render("Scars:"), styleText.Render(stats.ScarsLabel()))
	if m.animErr != nil {
		b.WriteString("\n\n")
		b.WriteString(styleNoticeWarn.Render("⚠ " + m.animErr.Error()))
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// noticeView renders the current notice line, or an empty line.
func (m Model) noticeView() string {
	if m.Notice.Text == "" {
		return ""
	}
	text := TruncateWithEllipsis(m.Notice.Text, m.Width-2)
	switch m.Notice.Kind {
	case NoticeWarn:
		return " " + styleNoticeWarn.Render(text)
	case NoticeError:
		return " " + styleNoticeError.Render(text)
	default:
		return " " + styleNoticeInfo.Render(text)
	}
}

// renderMap renders the memory map, oldest entry first.
func renderMap(regions []journal.Region, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("🗺️  Your Inner Landscape"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Each journal entry becomes a region on your inner world."))
	b.WriteString("\n\n")
	if len(regions) == 0 {
		b.WriteString(styleDim.Render("No entries yet. Add one to begin your map."))
		return indent(b.String())
	}
	wrap := lipgloss.NewStyle().Width(wrapWidth(width))
	for _, r := range regions {
		b.WriteString(styleHeading.Render(fmt.Sprintf("Region %d – Mood: %s", r.Number, r.Entry.Mood.Label())))
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(styleMetaphor).Render("> " + r.Entry.Metaphor))
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(styleText).Render("📜 " + r.Entry.Text))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("---"))
		b.WriteString("\n")
	}
	return indent(b.String())
}

// renderArchive renders past entries, newest first.
func renderArchive(days []journal.Day, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("📚 Past Entries"))
	b.WriteString("\n\n")
	if len(days) == 0 {
		b.WriteString(styleDim.Render("You have no journal entries yet."))
		return indent(b.String())
	}
	wrap := lipgloss.NewStyle().Width(wrapWidth(width))
	for _, d := range days {
		header := styleHeading.Render(fmt.Sprintf("Day %d – Mood: %s", d.Number, d.Entry.Mood.Label()))
		if ts := d.Entry.Time(); !ts.IsZero() {
			header += "  " + styleDim.Render(ts.Local().Format("2006-01-02 15:04"))
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(styleText).Render("📖 " + d.Entry.Text))
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(styleMetaphor).Render("✨ " + d.Entry.Metaphor))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("---"))
		b.WriteString("\n")
	}
	return indent(b.String())
}

func wrapWidth(width int) int {
	if width-4 < 20 {
		return 20
	}
	return width - 4
}

func indent(s string) string {
	return lipgloss.NewStyle().PaddingLeft(2).Render(s)
}
