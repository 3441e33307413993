package battleship

import (
	"math/rand"
	"time"
)

// Random is the only source of randomness the game uses.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded generator. A zero seed
// picks one from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
