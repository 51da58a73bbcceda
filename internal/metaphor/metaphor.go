// Package metaphor picks the short reflection shown after a journal entry.
// Each mood owns a weighted pool of canned strings; the built-in pools are
// uniform. Selection is not cryptographic and only reproducible when the
// generator is seeded.
package metaphor

import (
	"math/rand/v2"
	"time"

	"github.com/papapumpkin/mythoscape/internal/mood"
)

// Fallback is returned for moods without a pool.
const Fallback = "Your journey deepens..."

// Weighted pairs a metaphor with its relative selection weight.
type Weighted struct {
	Text   string  `toml:"text"`
	Weight float64 `toml:"weight"`
}

// Pool is the set of metaphors available to one mood.
type Pool []Weighted

// total returns the sum of all positive weights in the pool.
func (p Pool) total() float64 {
	var sum float64
	for _, w := range p {
		if w.Weight > 0 {
			sum += w.Weight
		}
	}
	return sum
}

// Builtin returns the default pools, two equally weighted lines per mood.
func Builtin() map[mood.Mood]Pool {
	return map[mood.Mood]Pool{
		mood.Joy: {
			{"Your wings unfurl in sunlight, radiant and golden.", 1},
			{"A songbird builds a nest in the heart of your soul.", 1},
		},
		mood.Sadness: {
			{"Your feathers are soaked, but the sky remembers how to clear.", 1},
			{"Raindrops trace the lines of your healing scars.", 1},
		},
		mood.Anger: {
			{"Your wings catch fire, forging light through fury.", 1},
			{"A blaze rises within, carving paths in shadowed lands.", 1},
		},
		mood.Reflection: {
			{"You glide over mirrored lakes, seeking hidden truths.", 1},
			{"Depth speaks in silence beneath your wings.", 1},
		},
		mood.Hope: {
			{"Your glow returns, soft but steady like dawn.", 1},
			{"New colors shimmer in places you thought lost.", 1},
		},
	}
}

// Generator draws metaphors from per-mood pools.
type Generator struct {
	pools map[mood.Mood]Pool
	rng   *rand.Rand
}

// New creates a generator over pools using rng. A nil rng is replaced with
// a time-seeded source.
func New(pools map[mood.Mood]Pool, rng *rand.Rand) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Generator{pools: pools, rng: rng}
}

// NewDefault creates a time-seeded generator over the built-in pools.
func NewDefault() *Generator {
	return New(Builtin(), nil)
}

// NewSeeded creates a generator whose draws repeat for the same seed.
func NewSeeded(pools map[mood.Mood]Pool, seed uint64) *Generator {
	return New(pools, rand.New(rand.NewPCG(seed, seed>>1)))
}

// Generate returns one metaphor for m chosen by weight, or Fallback when m
// has no usable pool.
func (g *Generator) Generate(m mood.Mood) string {
	pool := g.pools[m]
	total := pool.total()
	if total <= 0 {
		return Fallback
	}

	r := g.rng.Float64() * total
	for _, w := range pool {
		if w.Weight <= 0 {
			continue
		}
		r -= w.Weight
		if r < 0 {
			return w.Text
		}
	}
	// Float rounding can leave r at exactly zero; take the last usable line.
	for i := len(pool) - 1; i >= 0; i-- {
		if pool[i].Weight > 0 {
			return pool[i].Text
		}
	}
	return Fallback
}
