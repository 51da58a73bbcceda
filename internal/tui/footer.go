package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// JournalFooterBindings returns footer bindings for the entry form.
func JournalFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Submit, km.PrevMood, km.NextMood, km.NextTab, km.ForceQuit}
}

// BrowseFooterBindings returns footer bindings for the read-only views.
func BrowseFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.NextTab, km.JumpTab, km.Quit}
}
