package sampling

import (
	"math/rand/v2"
	"testing"

	"github.com/partialpass/partialpass/pattern"
)

func newSessionConfig() Config {
	return Config{
		BitsRange:     16,
		Positions:     16,
		CharactersMin: 3,
		CharactersMax: 5,
		DropRate:      10,
	}
}

func TestSessionDefaultsMaxRetries(t *testing.T) {
	s := NewSession(newSessionConfig(), newTestSource(1))
	if s.cfg.MaxRetries != DefaultMaxRetries {
		t.Fatalf("expected %d, got %d", DefaultMaxRetries, s.cfg.MaxRetries)
	}
}

func TestSessionProducesDistinctPatterns(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		s := NewSession(newSessionConfig(), rand.New(rand.NewPCG(seed, seed)))

		seen := make(map[pattern.Pattern]struct{})
		for {
			p, positions, ok := s.NextPattern()
			if !ok {
				break
			}
			if _, dup := seen[p]; dup {
				t.Fatalf("seed %d: duplicate pattern %d", seed, p)
			}
			seen[p] = struct{}{}

			if len(positions) < 3 || len(positions) > 5 {
				t.Fatalf("seed %d: size %d outside [3,5]", seed, len(positions))
			}
			if !p.Valid(16) {
				t.Fatalf("seed %d: pattern %d exceeds bits range", seed, p)
			}
		}

		if len(seen) == 0 {
			t.Fatalf("seed %d: produced no patterns", seed)
		}
		if s.Produced() != len(seen) {
			t.Fatalf("seed %d: Produced %d, seen %d", seed, s.Produced(), len(seen))
		}
	}
}

func TestSessionTerminates(t *testing.T) {
	// Every session must eventually report exhaustion; the weight decay
	// guarantees it even before the retry cap bites.
	for seed := uint64(1); seed <= 50; seed++ {
		s := NewSession(newSessionConfig(), rand.New(rand.NewPCG(seed, seed)))

		produced := 0
		for {
			_, _, ok := s.NextPattern()
			if !ok {
				break
			}
			produced++
			if produced > 100000 {
				t.Fatalf("seed %d: session did not terminate", seed)
			}
		}
	}
}

func TestSessionSinglePossiblePattern(t *testing.T) {
	// Three positions, every pattern must use all three: the only pattern is
	// 0b111 = 7. The second request must report exhaustion, not loop.
	cfg := Config{
		BitsRange:     3,
		Positions:     3,
		CharactersMin: 3,
		CharactersMax: 3,
		DropRate:      1,
	}
	s := NewSession(cfg, newTestSource(7))

	p, _, ok := s.NextPattern()
	if !ok {
		t.Fatal("expected one pattern")
	}
	if p.Raw() != 7 {
		t.Fatalf("expected 7, got %d", p.Raw())
	}

	if _, _, ok := s.NextPattern(); ok {
		t.Fatal("expected exhaustion after the only pattern")
	}
}

func TestSessionShortPoolExhaustsImmediately(t *testing.T) {
	// CharactersMin larger than the pool: no pattern can ever be built.
	cfg := Config{
		BitsRange:     16,
		Positions:     2,
		CharactersMin: 3,
		CharactersMax: 5,
		DropRate:      10,
	}
	s := NewSession(cfg, newTestSource(8))

	if _, _, ok := s.NextPattern(); ok {
		t.Fatal("expected immediate exhaustion")
	}
	if s.Produced() != 0 {
		t.Fatalf("expected 0 produced, got %d", s.Produced())
	}
}

func TestSessionPositionsStayWithinPool(t *testing.T) {
	// Positions narrower than BitsRange: bits at or above the pool size must
	// never be set.
	cfg := Config{
		BitsRange:     16,
		Positions:     6,
		CharactersMin: 2,
		CharactersMax: 4,
		DropRate:      10,
	}
	s := NewSession(cfg, newTestSource(9))

	for {
		p, positions, ok := s.NextPattern()
		if !ok {
			break
		}
		for _, pos := range positions {
			if pos >= 6 {
				t.Fatalf("position %d outside pool of 6", pos)
			}
		}
		if !p.Valid(6) {
			t.Fatalf("pattern %d sets bits outside pool", p.Raw())
		}
	}
}
