package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"

	"github.com/papapumpkin/mythoscape/internal/metaphor"
	"github.com/papapumpkin/mythoscape/internal/telemetry"
)

func inPool(p metaphor.Pool, s string) bool {
	for _, w := range p {
		if w.Text == s {
			return true
		}
	}
	return false
}

func readKinds(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var kinds []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var evt telemetry.Event
		if err := json.Unmarshal(sc.Bytes(), &evt); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}
