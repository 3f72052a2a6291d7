package sampling

import "math/rand/v2"

// Source supplies uniform random integers to the sampler. *math/rand/v2.Rand
// satisfies it directly, which keeps tests seedable. Patterns are not secret
// by themselves — only the hashed characters are — so a general-purpose PRNG
// is acceptable in production.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the process-global, auto-seeded random source.
func DefaultSource() Source {
	return globalSource{}
}
