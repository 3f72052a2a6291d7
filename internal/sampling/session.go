package sampling

import "github.com/partialpass/partialpass/pattern"

// DefaultMaxRetries bounds how many consecutive collisions with
// already-produced patterns one NextPattern call tolerates before reporting
// exhaustion. Weight decay shrinks the pool on every attempt, so the cap is a
// hard termination guarantee rather than the usual exit path.
const DefaultMaxRetries = 32

// Config describes one generation session.
type Config struct {
	// BitsRange is the codec width patterns are encoded against.
	BitsRange int
	// Positions is the number of selectable positions, i.e. the trimmed
	// password length. Always <= BitsRange.
	Positions     int
	CharactersMin int
	CharactersMax int
	DropRate      int
	MaxRetries    int
}

// Session is the transient state of one generation run: the weight table,
// the set of patterns already produced, and the random source. It replaces
// ambient per-object mutation so that concurrent runs share nothing.
type Session struct {
	cfg   Config
	table *WeightTable
	seen  map[pattern.Pattern]struct{}
	src   Source
}

func NewSession(cfg Config, src Source) *Session {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if src == nil {
		src = DefaultSource()
	}

	return &Session{
		cfg:   cfg,
		table: NewWeightTable(cfg.Positions),
		seen:  make(map[pattern.Pattern]struct{}),
		src:   src,
	}
}

// NextPattern produces one fresh pattern and its ascending positions.
//
// ok is false when the session is exhausted: the eligible pool can no longer
// satisfy CharactersMin, or MaxRetries draws in a row re-produced known
// patterns. Collided draws still penalize the weight table, matching the
// decay-driven termination of the scheme.
func (s *Session) NextPattern() (pattern.Pattern, []int, bool) {
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		positions := Sample(s.table, s.cfg.CharactersMin, s.cfg.CharactersMax, s.cfg.DropRate, s.src)
		if positions == nil {
			return 0, nil, false
		}

		p, err := pattern.FromPositions(positions, s.cfg.BitsRange)
		if err != nil {
			return 0, nil, false
		}

		if _, dup := s.seen[p]; dup {
			continue
		}

		s.seen[p] = struct{}{}
		return p, positions, true
	}

	return 0, nil, false
}

// Produced returns how many distinct patterns the session has handed out.
func (s *Session) Produced() int {
	return len(s.seen)
}
