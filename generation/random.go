package generation

import (
	"math"
	"math/rand"
	"time"
)

// Random is the source of every random decision a generation run makes.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// newSeededRandom returns a math/rand source for seed
func newSeededRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// clockSeed picks a seed when the caller did not provide one
func clockSeed() int64 {
	return time.Now().UnixNano()
}

// nextSeed draws a positive seed for the run after the current one.
// Zero is avoided because configs use it to mean "pick from the clock".
func nextSeed(r Random) int64 {
	return int64(r.Intn(math.MaxInt32)) + 1
}

// chance rolls a percentage: true with probability pct/100
func (g *DungeonGenerator) chance(pct int) bool {
	return g.rng.Intn(100) < pct
}

// pick returns a uniform index into a slice of length n
func (g *DungeonGenerator) pick(n int) int {
	return g.rng.Intn(n)
}
