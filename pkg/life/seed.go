package life

import "math/rand/v2"

// rng is a thin wrapper around math/rand/v2 for deterministic grid fills.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a fair coin flip.
func (r *rng) Bool() bool {
	return r.r.IntN(2) == 1
}
