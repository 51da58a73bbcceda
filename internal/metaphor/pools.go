package metaphor

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/mythoscape/internal/mood"
)

// ErrUnknownMood indicates a pool file names a table that is not a mood.
var ErrUnknownMood = errors.New("unknown mood in pool file")

// LoadPools reads a TOML pool file and merges it over the built-in pools.
// Each mood is an array of tables:
//
//	[[joy]]
//	text = "Your wings unfurl in sunlight, radiant and golden."
//	weight = 2
//
// Moods absent from the file keep their built-in pool. Weights that are
// missing or non-positive count as 1.
func LoadPools(path string) (map[mood.Mood]Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pool file: %w", err)
	}
	return ParsePools(data)
}

// ParsePools decodes pool TOML and merges it over the built-in pools.
func ParsePools(data []byte) (map[mood.Mood]Pool, error) {
	var raw map[string][]Weighted
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing pool file: %w", err)
	}

	pools := Builtin()
	var unknown []string
	for key, lines := range raw {
		m, ok := mood.Parse(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		pool := make(Pool, 0, len(lines))
		for _, w := range lines {
			if strings.TrimSpace(w.Text) == "" {
				continue
			}
			if w.Weight <= 0 {
				w.Weight = 1
			}
			pool = append(pool, w)
		}
		if len(pool) > 0 {
			pools[m] = pool
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownMood, strings.Join(unknown, ", "))
	}
	return pools, nil
}
