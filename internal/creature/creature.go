// Package creature implements the soul creature and the rule that evolves it
// from journal moods.
package creature

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/mythoscape/internal/mood"
)

// Glow is the creature's visual state, set by the most recent known mood.
type Glow string

// Glow values. GlowDim is the starting glow.
const (
	GlowDim        Glow = "dim"
	GlowBright     Glow = "bright"
	GlowSoft       Glow = "soft"
	GlowFlickering Glow = "flickering"
)

// Glows returns every glow value, starting with the default.
func Glows() []Glow {
	return []Glow{GlowDim, GlowBright, GlowSoft, GlowFlickering}
}

// Known reports whether g is a defined glow value.
func (g Glow) Known() bool {
	switch g {
	case GlowDim, GlowBright, GlowSoft, GlowFlickering:
		return true
	default:
		return false
	}
}

// Title returns the glow with its first letter upper-cased.
func (g Glow) Title() string {
	if g == "" {
		return ""
	}
	return strings.ToUpper(string(g[:1])) + string(g[1:])
}

// Stats is the persisted creature record. Wings starts at 1 and scars at 0;
// neither ever decreases.
type Stats struct {
	Wings int  `json:"wings" validate:"gte=1"`
	Glow  Glow `json:"glow" validate:"oneof=dim bright soft flickering"`
	Scars int  `json:"scars" validate:"gte=0"`
}

// Default returns the stats of a creature with no history.
func Default() Stats {
	return Stats{Wings: 1, Glow: GlowDim, Scars: 0}
}

// rule is the delta one mood applies to the stats.
type rule struct {
	wings int
	scars int
	glow  Glow
}

// rules is keyed by every known mood. Moods missing from it leave the
// creature unchanged.
var rules = map[mood.Mood]rule{
	mood.Joy:        {wings: 1, glow: GlowBright},
	mood.Hope:       {wings: 1, glow: GlowBright},
	mood.Sadness:    {scars: 1, glow: GlowSoft},
	mood.Reflection: {scars: 1, glow: GlowSoft},
	mood.Anger:      {wings: 1, scars: 1, glow: GlowFlickering},
}

// Evolve returns the stats after applying m. It never fails; unknown moods
// return s unchanged.
func Evolve(s Stats, m mood.Mood) Stats {
	r, ok := rules[m]
	if !ok {
		return s
	}
	s.Wings += r.wings
	s.Scars += r.scars
	s.Glow = r.glow
	return s
}

// Fold replays a mood history from the default creature.
func Fold(moods []mood.Mood) Stats {
	s := Default()
	for _, m := range moods {
		s = Evolve(s, m)
	}
	return s
}

// WingsLabel renders the wing count as a level.
func (s Stats) WingsLabel() string {
	return fmt.Sprintf("Level %d", s.Wings)
}

// ScarsLabel renders the scar count with its caption.
func (s Stats) ScarsLabel() string {
	return fmt.Sprintf("%d (a record of survival)", s.Scars)
}
