package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestTelemetry_RecordsCommandEvents(t *testing.T) {
	setupJournal(t)
	events := filepath.Join(t.TempDir(), "events.jsonl")
	viper.Set("telemetry_file", events)

	if _, _, err := execute(t, "", "write", "--mood", "joy", "bright morning"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := execute(t, "", "write", "--mood", "joy", "  "); err != nil {
		t.Fatalf("write empty: %v", err)
	}

	stdout, _, err := execute(t, "", "telemetry")
	if err != nil {
		t.Fatalf("telemetry: %v", err)
	}
	for _, kind := range []string{"session_start", "state_loaded", "entry_submitted", "state_saved", "entry_rejected"} {
		if !strings.Contains(stdout, kind) {
			t.Errorf("telemetry output missing %q:\n%s", kind, stdout)
		}
	}
	if !strings.Contains(stdout, "command=write") {
		t.Errorf("session_start should name the command:\n%s", stdout)
	}
}

func TestTelemetry_FileFlag(t *testing.T) {
	setupJournal(t)
	events := filepath.Join(t.TempDir(), "events.jsonl")
	viper.Set("telemetry_file", events)
	if _, _, err := execute(t, "", "creature"); err != nil {
		t.Fatalf("creature: %v", err)
	}
	viper.Set("telemetry_file", "")

	stdout, _, err := execute(t, "", "telemetry", "--file", events)
	if err != nil {
		t.Fatalf("telemetry --file: %v", err)
	}
	if !strings.Contains(stdout, "command=creature") {
		t.Errorf("output:\n%s", stdout)
	}
}

func TestTelemetry_NotConfigured(t *testing.T) {
	setupJournal(t)

	_, _, err := execute(t, "", "telemetry")
	if !errors.Is(err, errNoTelemetry) {
		t.Errorf("telemetry error = %v, want errNoTelemetry", err)
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "with data",
			line: `{"ts":"2026-03-14T14:26:53Z","kind":"entry_submitted","session":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","data":{"mood":"Joy","index":3}}`,
			want: []string{"entry_submitted", "session=1b4e28ba", "index=3 mood=Joy"},
		},
		{
			name: "scalar data",
			line: `{"ts":"2026-03-14T14:26:53Z","kind":"state_saved","data":"ok"}`,
			want: []string{"state_saved", `"ok"`},
		},
		{
			name: "garbage",
			line: `not json`,
			want: []string{"??? not json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			printEvent(&buf, tt.line)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("printEvent(%q) = %q, want it to contain %q", tt.line, buf.String(), w)
				}
			}
		})
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()
	if got := shortID("1b4e28ba-2fa1-11d2"); got != "1b4e28ba" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("plain"); got != "plain" {
		t.Errorf("shortID = %q", got)
	}
}

func TestDrainLines_KeepsPartialLine(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	first := `{"ts":"2026-03-14T14:26:53Z","kind":"state_loaded"}` + "\n" + `{"ts":"2026-03-14T14:26:54Z","ki`
	rest := `nd":"state_saved"}` + "\n"

	partial := drainLines(&out, bufio.NewReader(strings.NewReader(first)), "")
	if !strings.Contains(out.String(), "state_loaded") || strings.Contains(out.String(), "???") {
		t.Fatalf("first drain printed %q", out.String())
	}
	if partial == "" {
		t.Fatal("expected a partial line to be carried over")
	}

	if left := drainLines(&out, bufio.NewReader(strings.NewReader(rest)), partial); left != "" {
		t.Errorf("leftover %q after completing the line", left)
	}
	if !strings.Contains(out.String(), "state_saved") {
		t.Errorf("completed line not printed: %q", out.String())
	}
}
