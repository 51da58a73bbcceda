// Package store persists the journal as a single flat JSON document with the
// keys "entries" and "creature_stats". Loading is tolerant: absent keys take
// their documented defaults, and only structurally invalid JSON is an error.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/mood"
)

// ErrMalformed indicates the input is not a JSON object of the expected shape.
var ErrMalformed = errors.New("malformed journal JSON")

// wireStats mirrors creature.Stats with optional fields so absent keys can be
// told apart from zero values.
type wireStats struct {
	Wings *int           `json:"wings"`
	Glow  *creature.Glow `json:"glow"`
	Scars *int           `json:"scars"`
}

// wireState mirrors journal.SavedState for decoding.
type wireState struct {
	Entries       []journal.Entry `json:"entries"`
	CreatureStats *wireStats      `json:"creature_stats"`
}

// stats fills any missing field from creature.Default.
func (w *wireStats) stats() creature.Stats {
	s := creature.Default()
	if w == nil {
		return s
	}
	if w.Wings != nil {
		s.Wings = *w.Wings
	}
	if w.Glow != nil {
		s.Glow = *w.Glow
	}
	if w.Scars != nil {
		s.Scars = *w.Scars
	}
	return s
}

// Marshal renders state as indented JSON followed by a newline. A nil entry
// list is written as [].
func Marshal(state journal.SavedState) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes state to w as indented JSON. HTML characters in entry text
// are written verbatim.
func Encode(w io.Writer, state journal.SavedState) error {
	if state.Entries == nil {
		state.Entries = []journal.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	return nil
}

// Unmarshal decodes a journal document. Missing "entries" yields an empty
// list; missing "creature_stats" or any of its fields yields the defaults
// {wings:1, glow:"dim", scars:0}. Anything that is not a JSON object, or has
// a key of the wrong type, returns an error wrapping ErrMalformed.
func Unmarshal(data []byte) (journal.SavedState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return journal.SavedState{}, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}

	var w wireState
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return journal.SavedState{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	state := journal.SavedState{
		Entries:       w.Entries,
		CreatureStats: w.CreatureStats.stats(),
	}
	if state.Entries == nil {
		state.Entries = []journal.Entry{}
	}
	// Older journals store the emoji label ("🌞 Joy"); keep the bare name.
	for i := range state.Entries {
		if m, ok := mood.Parse(string(state.Entries[i].Mood)); ok {
			state.Entries[i].Mood = m
		}
	}
	return state, nil
}

// Decode reads a whole journal document from r.
func Decode(r io.Reader) (journal.SavedState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return journal.SavedState{}, fmt.Errorf("reading journal: %w", err)
	}
	return Unmarshal(data)
}
