// Package journal holds the journal data model and the Session that applies
// new entries to it.
package journal

import (
	"errors"
	"time"

	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/mood"
)

// ErrEmptyEntry indicates an entry whose text is empty after trimming.
var ErrEmptyEntry = errors.New("entry text is empty")

// TimestampLayout is the layout used for Entry.Timestamp.
const TimestampLayout = time.RFC3339

// Entry is one submitted journal entry. Entries are never edited or removed
// once appended.
type Entry struct {
	Text      string    `json:"text" validate:"required"`
	Mood      mood.Mood `json:"mood" validate:"known_mood"`
	Metaphor  string    `json:"metaphor"`
	Timestamp string    `json:"timestamp,omitempty"`
}

// Time parses the entry timestamp. The zero time is returned when the
// timestamp is missing or unparseable.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SavedState is everything that persists between sessions.
type SavedState struct {
	Entries       []Entry        `json:"entries" validate:"dive"`
	CreatureStats creature.Stats `json:"creature_stats"`
}

// NewState returns the state of a journal with no entries.
func NewState() SavedState {
	return SavedState{
		Entries:       []Entry{},
		CreatureStats: creature.Default(),
	}
}

// Clone returns a copy that shares no memory with s.
func (s SavedState) Clone() SavedState {
	entries := make([]Entry, len(s.Entries))
	copy(entries, s.Entries)
	return SavedState{Entries: entries, CreatureStats: s.CreatureStats}
}

// Moods returns the mood history in submission order.
func (s SavedState) Moods() []mood.Mood {
	out := make([]mood.Mood, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Mood
	}
	return out
}

// Replay recomputes the creature from the full mood history. For any state
// built by a Session it equals CreatureStats.
func (s SavedState) Replay() creature.Stats {
	return creature.Fold(s.Moods())
}

// Region is one stop on the memory map, numbered from 1 in entry order.
type Region struct {
	Number int
	Entry  Entry
}

// Regions returns the memory map: every entry in submission order.
func (s SavedState) Regions() []Region {
	out := make([]Region, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = Region{Number: i + 1, Entry: e}
	}
	return out
}

// Day is one archive row. Number is the 1-based submission index.
type Day struct {
	Number int
	Entry  Entry
}

// Archive returns the entries newest first.
func (s SavedState) Archive() []Day {
	n := len(s.Entries)
	out := make([]Day, n)
	for i := range s.Entries {
		idx := n - 1 - i
		out[i] = Day{Number: idx + 1, Entry: s.Entries[idx]}
	}
	return out
}
