// Package assets loads the optional per-glow creature animations. An
// animation is a text file of frames separated by lines containing only
// "---". A missing asset is never fatal: Load returns a placeholder and an
// error wrapping ErrMissing for the caller to show as a warning.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/mythoscape/internal/creature"
)

// ErrMissing indicates no usable animation asset exists for a glow.
var ErrMissing = errors.New("animation asset missing")

// frameSeparator splits frames within an asset file.
const frameSeparator = "---"

// Animation is the ordered frames for one glow.
type Animation struct {
	Glow        creature.Glow
	Frames      []string
	Placeholder bool
}

// Frame returns frame i, cycling through the animation.
func (a Animation) Frame(i int) string {
	if len(a.Frames) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return a.Frames[i%len(a.Frames)]
}

// Placeholder returns the stand-in shown when a glow has no asset.
func Placeholder(g creature.Glow) Animation {
	return Animation{
		Glow:        g,
		Frames:      []string{fmt.Sprintf("(no animation for %s glow)", g)},
		Placeholder: true,
	}
}

// Library resolves animation files by glow. Explicit Paths win; otherwise
// the asset is <Dir>/<glow>.txt.
type Library struct {
	Dir   string
	Paths map[creature.Glow]string
}

// NewLibrary creates a library rooted at dir with optional per-glow paths.
func NewLibrary(dir string, paths map[creature.Glow]string) *Library {
	return &Library{Dir: dir, Paths: paths}
}

// Path returns the file an asset for g would be read from, or "" when no
// location is configured.
func (l *Library) Path(g creature.Glow) string {
	if p, ok := l.Paths[g]; ok && p != "" {
		return p
	}
	if l.Dir == "" || !g.Known() {
		return ""
	}
	return filepath.Join(l.Dir, string(g)+".txt")
}

// Load reads the animation for g. On any failure it returns the placeholder
// together with an error wrapping ErrMissing.
func (l *Library) Load(g creature.Glow) (Animation, error) {
	path := l.Path(g)
	if path == "" {
		return Placeholder(g), fmt.Errorf("%w: no asset configured for %s glow", ErrMissing, g)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder(g), fmt.Errorf("%w: %s glow: %w", ErrMissing, g, err)
	}

	frames := ParseFrames(string(data))
	if len(frames) == 0 {
		return Placeholder(g), fmt.Errorf("%w: %s has no frames", ErrMissing, path)
	}
	return Animation{Glow: g, Frames: frames}, nil
}

// Check loads every glow and returns the errors for those that fall back to
// the placeholder.
func (l *Library) Check() []error {
	var errs []error
	for _, g := range creature.Glows() {
		if _, err := l.Load(g); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ParseFrames splits asset text into frames. Blank frames are dropped and
// trailing whitespace on each frame is trimmed.
func ParseFrames(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var (
		frames  []string
		current []string
	)
	flush := func() {
		frame := strings.TrimRight(strings.Join(current, "\n"), " \t\n")
		if strings.TrimSpace(frame) != "" {
			frames = append(frames, frame)
		}
		current = current[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == frameSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return frames
}
