package maze

import "math/rand"

// Source is the uniform random generator consumed while choosing cells and
// carve directions. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
