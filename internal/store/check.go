package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/mood"
)

// Issue is one problem found in a loaded journal. Issues are reported to the
// writer; they never stop the journal from loading.
type Issue struct {
	Field   string // JSON path, e.g. "entries[2].mood"
	Problem string
}

// String renders the issue as "field: problem".
func (i Issue) String() string {
	if i.Field == "" {
		return i.Problem
	}
	return i.Field + ": " + i.Problem
}

// newValidator builds a validator that names fields by their JSON keys and
// understands the known_mood tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("known_mood", func(fl validator.FieldLevel) bool {
		return mood.Mood(fl.Field().String()).Known()
	})
	return v
}

// Check reports best-effort problems with state: stats out of range, an
// unknown glow, entries with no text or an unrecognized mood, and creature
// stats that disagree with a replay of the mood history.
func Check(state journal.SavedState) []Issue {
	var issues []Issue

	err := newValidator().Struct(state)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			issues = append(issues, Issue{
				Field:   fieldPath(fe.Namespace()),
				Problem: describe(fe),
			})
		}
	} else if err != nil {
		issues = append(issues, Issue{Problem: err.Error()})
	}

	if replay := state.Replay(); replay != state.CreatureStats {
		issues = append(issues, Issue{
			Field: "creature_stats",
			Problem: fmt.Sprintf("stored stats (wings %d, scars %d, glow %s) differ from mood history (wings %d, scars %d, glow %s)",
				state.CreatureStats.Wings, state.CreatureStats.Scars, state.CreatureStats.Glow,
				replay.Wings, replay.Scars, replay.Glow),
		})
	}
	return issues
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(ns string) string {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return ns
	}
	return rest
}

// describe turns a validator field error into a short sentence.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is empty"
	case "gte":
		return fmt.Sprintf("is %v, want at least %s", fe.Value(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not one of: %s", fe.Value(), fe.Param())
	case "known_mood":
		return fmt.Sprintf("%q is not a known mood; it will not change the creature", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
