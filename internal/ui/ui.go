package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/mythoscape/internal/ansi"
	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/store"
)

// Printer writes human-facing output. Everything goes to stderr so that
// stdout stays free for data such as exported journals.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to os.Stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWithWriter returns a Printer that writes to w.
func NewWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the app title and tagline.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Magenta+"  🦋 Mythoscape"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Dim+"  A self-growth journal where your soul creature evolves and memories shape your inner world."+ansi.Reset)
	fmt.Fprintln(p.w)
}

// EntrySaved reports an accepted entry and the metaphor it drew.
func (p *Printer) EntrySaved(e journal.Entry) {
	fmt.Fprintln(p.w, ansi.Green+ansi.Bold+"✓ Entry saved!"+ansi.Reset+" Your soul creature has evolved.")
	fmt.Fprintf(p.w, ansi.Cyan+"🌟 %s"+ansi.Reset+"\n", e.Metaphor)
}

// EmptyEntry warns that a blank entry was not saved.
func (p *Printer) EmptyEntry() {
	fmt.Fprintln(p.w, ansi.Yellow+"⚠ nothing to save"+ansi.Reset+" — write something first")
}

// Creature renders the soul creature's stats.
func (p *Printer) Creature(s creature.Stats) {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Magenta+"🦋 Your Soul Creature"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Dim+"This ethereal being mirrors your inner growth."+ansi.Reset)
	fmt.Fprintf(p.w, "  "+ansi.Bold+"Wings:"+ansi.Reset+" %s\n", s.WingsLabel())
	fmt.Fprintf(p.w, "  "+ansi.Bold+"Glow:"+ansi.Reset+"  %s\n", s.Glow.Title())
	fmt.Fprintf(p.w, "  "+ansi.Bold+"Scars:"+ansi.Reset+" %s\n", s.ScarsLabel())
}

// MemoryMap renders every entry in submission order as a region.
func (p *Printer) MemoryMap(regions []journal.Region) {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"🗺️  Your Inner Landscape"+ansi.Reset)
	if len(regions) == 0 {
		fmt.Fprintln(p.w, ansi.Dim+"No entries yet. Add one to begin your map."+ansi.Reset)
		return
	}
	for _, r := range regions {
		fmt.Fprintf(p.w, ansi.Bold+"Region %d – Mood: %s"+ansi.Reset+"\n", r.Number, r.Entry.Mood.Label())
		fmt.Fprintf(p.w, "  > "+ansi.Italic+"%s"+ansi.Reset+"\n", r.Entry.Metaphor)
		fmt.Fprintf(p.w, "  "+ansi.Dim+"📜 %s"+ansi.Reset+"\n", r.Entry.Text)
		fmt.Fprintln(p.w, ansi.Dim+"---"+ansi.Reset)
	}
}

// Archive renders past entries, newest first.
func (p *Printer) Archive(days []journal.Day) {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"📚 Past Entries"+ansi.Reset)
	if len(days) == 0 {
		fmt.Fprintln(p.w, ansi.Dim+"You have no journal entries yet."+ansi.Reset)
		return
	}
	for _, d := range days {
		header := fmt.Sprintf("Day %d – Mood: %s", d.Number, d.Entry.Mood.Label())
		if ts := d.Entry.Time(); !ts.IsZero() {
			header += ansi.Dim + "  " + ts.Local().Format("2006-01-02 15:04") + ansi.Reset + ansi.Bold
		}
		fmt.Fprintln(p.w, ansi.Bold+header+ansi.Reset)
		fmt.Fprintf(p.w, "  📖 %s\n", d.Entry.Text)
		fmt.Fprintf(p.w, "  "+ansi.Dim+"✨ %s"+ansi.Reset+"\n", d.Entry.Metaphor)
		fmt.Fprintln(p.w, ansi.Dim+"---"+ansi.Reset)
	}
}

// Issues lists problems found by store.Check.
func (p *Printer) Issues(path string, issues []store.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"✓ %s"+ansi.Reset+" — no issues\n", path)
		return
	}
	fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"⚠ %s"+ansi.Reset+" — %d issue(s):\n", path, len(issues))
	for _, i := range issues {
		fmt.Fprintf(p.w, "  "+ansi.Yellow+"• "+ansi.Reset+"%s\n", i)
	}
}

// Imported confirms an uploaded journal replaced the current one.
func (p *Printer) Imported(path string, state journal.SavedState) {
	fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"✓ imported"+ansi.Reset+" %s — %s, creature at %d wings, %s glow\n",
		path, plural(len(state.Entries), "entry", "entries"), state.CreatureStats.Wings, state.CreatureStats.Glow)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"warning: "+ansi.Reset+"%s\n", msg)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// ShowMoods lists the moods accepted by --mood.
func (p *Printer) ShowMoods(labels []string) {
	fmt.Fprintln(p.w, ansi.Bold+"Moods:"+ansi.Reset)
	fmt.Fprintln(p.w, "  "+strings.Join(labels, "  "))
}

// plural formats n with the singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
