// Package mood defines the fixed set of moods a journal entry can carry.
package mood

import (
	"strings"
	"unicode"
)

// Mood is the emotional category the writer picks for an entry.
// Values outside the known set are representable and act as no-ops.
type Mood string

// The known moods.
const (
	Joy        Mood = "Joy"
	Sadness    Mood = "Sadness"
	Anger      Mood = "Anger"
	Reflection Mood = "Reflection"
	Hope       Mood = "Hope"
)

// all lists the moods in selection order.
var all = [...]Mood{Joy, Sadness, Anger, Reflection, Hope}

// emoji maps each known mood to the glyph shown beside its label.
var emoji = map[Mood]string{
	Joy:        "🌞",
	Sadness:    "🌧️",
	Anger:      "🔥",
	Reflection: "🌊",
	Hope:       "🌈",
}

// All returns the known moods in selection order.
func All() []Mood {
	out := make([]Mood, len(all))
	copy(out, all[:])
	return out
}

// Known reports whether m is one of the five defined moods.
func (m Mood) Known() bool {
	_, ok := emoji[m]
	return ok
}

// Emoji returns the glyph for m, or "" for unknown moods.
func (m Mood) Emoji() string {
	return emoji[m]
}

// Label returns the display label, e.g. "🌞 Joy". Unknown moods render as
// their raw value.
func (m Mood) Label() string {
	if e, ok := emoji[m]; ok {
		return e + " " + string(m)
	}
	return string(m)
}

// Parse resolves user input to a Mood. It accepts the bare name in any case
// ("joy") and the emoji label ("🌞 Joy"). Unrecognized input is returned
// trimmed with ok=false so the caller can keep it as a no-op mood.
func Parse(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range all {
		if strings.EqualFold(s, string(m)) || s == m.Label() {
			return m, true
		}
	}
	// Labels typed without the variation selector or with odd spacing.
	if glyph, rest, found := strings.Cut(s, " "); found && !strings.ContainsFunc(glyph, unicode.IsLetter) {
		rest = strings.TrimSpace(rest)
		for _, m := range all {
			if strings.EqualFold(rest, string(m)) {
				return m, true
			}
		}
	}
	return Mood(s), false
}
