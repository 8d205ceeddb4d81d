package runtime

import "math/rand"

// Shuffler produces a uniform random permutation of n positions, mapping new
// position -> old position. Injected so Mix's output order is deterministic
// under test, per §9's "RNG collaborator" design note.
type Shuffler interface {
	Shuffle(n int) []int
}

// randShuffler is the default Shuffler, backed by math/rand.
type randShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler returns a Shuffler seeded from a process-wide source.
func NewRandShuffler(seed int64) Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randShuffler) Shuffle(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	s.rng.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// FixedShuffler is a deterministic Shuffler stub for tests: it always
// returns the same permutation regardless of n, truncated/identity-padded to
// fit.
type FixedShuffler struct {
	Perm []int
}

func (s FixedShuffler) Shuffle(n int) []int {
	if len(s.Perm) == n {
		out := make([]int, n)
		copy(out, s.Perm)
		return out
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
