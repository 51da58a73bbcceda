package tui

import (
	"strings"
	"testing"

	"github.com/papapumpkin/mythoscape/internal/creature"
)

func TestGlowColorDistinct(t *testing.T) {
	t.Parallel()
	seen := make(map[string]creature.Glow)
	for _, g := range creature.Glows() {
		c := string(glowColor(g))
		if prev, dup := seen[c]; dup {
			t.Errorf("glow %s shares colour %s with %s", g, c, prev)
		}
		seen[c] = g
	}
	if glowColor(creature.Glow("eerie")) != colorDim {
		t.Error("unknown glow should fall back to the dim colour")
	}
}

func TestFooterStyleHasTopBorder(t *testing.T) {
	t.Parallel()
	if !styleFooter.GetBorderTop() {
		t.Error("footer should have a top border")
	}
	if styleFooter.GetBorderBottom() || styleFooter.GetBorderLeft() || styleFooter.GetBorderRight() {
		t.Error("footer should only have a top border")
	}
}

func TestLogo(t *testing.T) {
	t.Parallel()
	if !strings.Contains(Logo(), "MYTHOSCAPE") {
		t.Errorf("Logo() = %q, want wordmark", Logo())
	}
	if LogoPlain() != "🦋 MYTHOSCAPE" {
		t.Errorf("LogoPlain() = %q", LogoPlain())
	}
}
