package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/metaphor"
	"github.com/papapumpkin/mythoscape/internal/mood"
	"github.com/papapumpkin/mythoscape/internal/telemetry"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("EST", -5*3600))

func newTestSession(t *testing.T, state SavedState) *Session {
	t.Helper()
	return NewSession(state,
		WithGenerator(metaphor.NewSeeded(metaphor.Builtin(), 1)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestSubmit_AppendsEntryAndEvolves(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, NewState())
	entry, err := s.Submit("  walked by the river  ", mood.Reflection)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if entry.Text != "walked by the river" {
		t.Errorf("Text = %q, want trimmed", entry.Text)
	}
	if entry.Mood != mood.Reflection {
		t.Errorf("Mood = %q", entry.Mood)
	}
	if entry.Timestamp != "2026-03-14T14:26:53Z" {
		t.Errorf("Timestamp = %q, want UTC RFC 3339", entry.Timestamp)
	}
	if !entry.Time().Equal(fixedNow) {
		t.Errorf("Time() = %v, want %v", entry.Time(), fixedNow)
	}
	if !inPool(metaphor.Builtin()[mood.Reflection], entry.Metaphor) {
		t.Errorf("Metaphor %q not from the reflection pool", entry.Metaphor)
	}

	want := creature.Stats{Wings: 1, Scars: 1, Glow: creature.GlowSoft}
	if got := s.Creature(); got != want {
		t.Errorf("Creature() = %+v, want %+v", got, want)
	}
	if got := s.Entries(); len(got) != 1 || got[0] != entry {
		t.Errorf("Entries() = %+v", got)
	}
}

func TestSubmit_EmptyTextIsRejected(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		s := newTestSession(t, NewState())
		before := s.State()

		_, err := s.Submit(text, mood.Anger)
		if !errors.Is(err, ErrEmptyEntry) {
			t.Errorf("Submit(%q) err = %v, want ErrEmptyEntry", text, err)
		}
		after := s.State()
		if len(after.Entries) != 0 {
			t.Errorf("Submit(%q) appended an entry", text)
		}
		if after.CreatureStats != before.CreatureStats {
			t.Errorf("Submit(%q) mutated stats: %+v", text, after.CreatureStats)
		}
	}
}

func TestSubmit_UnknownMoodIsNoOpForCreature(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, NewState())
	entry, err := s.Submit("grey afternoon", mood.Mood("Ennui"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if entry.Metaphor != metaphor.Fallback {
		t.Errorf("Metaphor = %q, want fallback", entry.Metaphor)
	}
	if s.Creature() != creature.Default() {
		t.Errorf("Creature() = %+v, want default", s.Creature())
	}
	if len(s.Entries()) != 1 {
		t.Error("entry with unknown mood should still be recorded")
	}
}

func TestSubmit_StatsEqualReplayOfHistory(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, NewState())
	history := []mood.Mood{mood.Joy, mood.Anger, mood.Sadness, mood.Hope, mood.Reflection, mood.Anger}
	for i, m := range history {
		if _, err := s.Submit("entry", m); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	state := s.State()
	if state.CreatureStats != state.Replay() {
		t.Errorf("stored %+v != replayed %+v", state.CreatureStats, state.Replay())
	}
	if state.CreatureStats != creature.Fold(history) {
		t.Errorf("stored %+v != Fold %+v", state.CreatureStats, creature.Fold(history))
	}
	for i, e := range state.Entries {
		if e.Mood != history[i] {
			t.Errorf("entry %d mood = %q, want %q (order must follow submission)", i, e.Mood, history[i])
		}
	}
}

func TestSubmit_CanonicalizesMoodSpelling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  mood.Mood
		want mood.Mood
	}{
		{"joy", mood.Joy},
		{"  HOPE ", mood.Hope},
		{"🌞 Joy", mood.Joy},
		{"🌧️ Sadness", mood.Sadness},
		{"Ennui", "Ennui"},
	}
	for _, tt := range tests {
		t.Run(string(tt.raw), func(t *testing.T) {
			t.Parallel()
			s := newTestSession(t, NewState())
			entry, err := s.Submit("entry", tt.raw)
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if entry.Mood != tt.want {
				t.Errorf("entry mood = %q, want %q", entry.Mood, tt.want)
			}
			state := s.State()
			if state.CreatureStats != state.Replay() {
				t.Errorf("stored %+v != replayed %+v", state.CreatureStats, state.Replay())
			}
			if state.CreatureStats != creature.Fold([]mood.Mood{tt.want}) {
				t.Errorf("stored %+v != Fold %+v", state.CreatureStats, creature.Fold([]mood.Mood{tt.want}))
			}
		})
	}
}

func TestState_IsACopy(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, NewState())
	if _, err := s.Submit("first", mood.Joy); err != nil {
		t.Fatal(err)
	}
	snap := s.State()
	snap.Entries[0].Text = "tampered"
	snap.CreatureStats.Wings = 99

	if s.Entries()[0].Text != "first" {
		t.Error("mutating State() leaked into the session")
	}
	if s.Creature().Wings == 99 {
		t.Error("mutating State() stats leaked into the session")
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, NewState())
	uploaded := SavedState{
		Entries:       []Entry{{Text: "old", Mood: mood.Hope, Metaphor: "m"}},
		CreatureStats: creature.Stats{Wings: 2, Glow: creature.GlowBright},
	}
	s.Replace(uploaded)
	uploaded.Entries[0].Text = "changed after upload"

	if got := s.Entries()[0].Text; got != "old" {
		t.Errorf("Replace kept a reference to the caller's slice: %q", got)
	}
	if _, err := s.Submit("new", mood.Anger); err != nil {
		t.Fatal(err)
	}
	want := creature.Stats{Wings: 3, Scars: 1, Glow: creature.GlowFlickering}
	if s.Creature() != want {
		t.Errorf("Creature() = %+v, want %+v", s.Creature(), want)
	}
}

func TestRegionsAndArchive(t *testing.T) {
	t.Parallel()

	state := SavedState{Entries: []Entry{
		{Text: "a", Mood: mood.Joy},
		{Text: "b", Mood: mood.Sadness},
		{Text: "c", Mood: mood.Hope},
	}}

	regions := state.Regions()
	for i, r := range regions {
		if r.Number != i+1 || r.Entry.Text != state.Entries[i].Text {
			t.Errorf("region %d = %+v", i, r)
		}
	}

	archive := state.Archive()
	wantText := []string{"c", "b", "a"}
	wantDay := []int{3, 2, 1}
	for i, d := range archive {
		if d.Entry.Text != wantText[i] || d.Number != wantDay[i] {
			t.Errorf("archive[%d] = Day %d %q, want Day %d %q", i, d.Number, d.Entry.Text, wantDay[i], wantText[i])
		}
	}

	if len(NewState().Archive()) != 0 || len(NewState().Regions()) != 0 {
		t.Error("empty journal should have no regions or days")
	}
}

func TestEntryTime_Unparseable(t *testing.T) {
	t.Parallel()

	if !(Entry{Timestamp: "yesterday"}).Time().IsZero() {
		t.Error("expected zero time for unparseable timestamp")
	}
	if !(Entry{}).Time().IsZero() {
		t.Error("expected zero time for missing timestamp")
	}
}

func TestSubmit_RecordsTelemetry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(NewState(), WithEmitter(em))
	if _, err := s.Submit("ok", mood.Joy); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(" ", mood.Joy); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("want ErrEmptyEntry, got %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatal(err)
	}

	kinds := readKinds(t, path)
	want := []string{telemetry.KindEntrySubmitted, telemetry.KindEntryRejected}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}
