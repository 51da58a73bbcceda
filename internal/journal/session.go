package journal

import (
	"strings"
	"time"

	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/metaphor"
	"github.com/papapumpkin/mythoscape/internal/mood"
	"github.com/papapumpkin/mythoscape/internal/telemetry"
)

// Session owns one user's journal state for the lifetime of a command or TUI
// run. It is not safe for concurrent use.
type Session struct {
	state     SavedState
	generator *metaphor.Generator
	now       func() time.Time
	emitter   *telemetry.Emitter
}

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets the metaphor generator. The default draws from the
// built-in pools with a time-seeded source.
func WithGenerator(g *metaphor.Generator) Option {
	return func(s *Session) { s.generator = g }
}

// WithClock sets the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithEmitter sets the telemetry emitter. A nil emitter records nothing.
func WithEmitter(e *telemetry.Emitter) Option {
	return func(s *Session) { s.emitter = e }
}

// NewSession creates a session over state.
func NewSession(state SavedState, opts ...Option) *Session {
	s := &Session{
		state: state.Clone(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = metaphor.NewDefault()
	}
	return s
}

// Submit records a new entry. Text is trimmed; if nothing remains Submit
// returns ErrEmptyEntry and the state is unchanged. Otherwise a metaphor is
// drawn for m, the creature evolves, and the entry is appended. Moods given
// by label or in another case are stored under their canonical name.
func (s *Session) Submit(text string, m mood.Mood) (Entry, error) {
	if p, ok := mood.Parse(string(m)); ok {
		m = p
	}
	text = strings.TrimSpace(text)
	if text == "" {
		_ = s.emitter.Record(telemetry.KindEntryRejected, map[string]string{
			"reason": "empty",
			"mood":   string(m),
		})
		return Entry{}, ErrEmptyEntry
	}

	entry := Entry{
		Text:      text,
		Mood:      m,
		Metaphor:  s.generator.Generate(m),
		Timestamp: s.now().UTC().Format(TimestampLayout),
	}
	before := s.state.CreatureStats
	s.state.CreatureStats = creature.Evolve(before, m)
	s.state.Entries = append(s.state.Entries, entry)

	_ = s.emitter.Record(telemetry.KindEntrySubmitted, map[string]any{
		"index":   len(s.state.Entries),
		"mood":    string(m),
		"glow":    string(s.state.CreatureStats.Glow),
		"wings":   s.state.CreatureStats.Wings,
		"scars":   s.state.CreatureStats.Scars,
		"evolved": before != s.state.CreatureStats,
	})
	return entry, nil
}

// State returns a copy of the current state.
func (s *Session) State() SavedState {
	return s.state.Clone()
}

// Entries returns a copy of the entries in submission order.
func (s *Session) Entries() []Entry {
	return s.state.Clone().Entries
}

// Creature returns the current creature stats.
func (s *Session) Creature() creature.Stats {
	return s.state.CreatureStats
}

// Replace swaps in a whole new state, as when a saved journal is uploaded.
func (s *Session) Replace(state SavedState) {
	s.state = state.Clone()
}
