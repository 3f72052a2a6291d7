package pattern

import (
	"errors"
	"math/bits"
)

// MaxBits is the widest supported bitsRange. Patterns are stored in a uint64,
// so position indices above 63 cannot be represented.
const MaxBits = 64

type Pattern uint64

var (
	ErrBitsRange   = errors.New("bits range must be between 1 and 64")
	ErrPositionOOB = errors.New("position outside bits range")
)

// FromPositions encodes an ascending-or-not set of positions into a Pattern.
func FromPositions(positions []int, bitsRange int) (Pattern, error) {
	if bitsRange < 1 || bitsRange > MaxBits {
		return 0, ErrBitsRange
	}

	var p Pattern
	for _, pos := range positions {
		if pos < 0 || pos >= bitsRange {
			return 0, ErrPositionOOB
		}
		p |= 1 << pos
	}

	return p, nil
}

func (p Pattern) Has(bit int) bool {
	if bit < 0 || bit >= MaxBits {
		return false
	}
	return (p & (1 << bit)) != 0
}

func (p *Pattern) Set(bit int) {
	if bit < 0 || bit >= MaxBits {
		return
	}
	*p |= (1 << bit)
}

func (p *Pattern) Clear(bit int) {
	if bit < 0 || bit >= MaxBits {
		return
	}
	*p &^= (1 << bit)
}

// Positions decodes the pattern into its set positions, ascending.
func (p Pattern) Positions(bitsRange int) []int {
	if bitsRange < 1 || bitsRange > MaxBits {
		return nil
	}

	out := make([]int, 0, bits.OnesCount64(uint64(p)))
	for i := 0; i < bitsRange; i++ {
		if p.Has(i) {
			out = append(out, i)
		}
	}

	return out
}

// Slots decodes the pattern into a fixed-length bit sequence of length
// bitsRange, one entry per character slot. Rendering collaborators draw one
// input box per true entry and a disabled placeholder per false entry.
func (p Pattern) Slots(bitsRange int) []bool {
	if bitsRange < 1 || bitsRange > MaxBits {
		return nil
	}

	out := make([]bool, bitsRange)
	for i := 0; i < bitsRange; i++ {
		out[i] = p.Has(i)
	}

	return out
}

// Count returns the number of set positions.
func (p Pattern) Count() int {
	return bits.OnesCount64(uint64(p))
}

// Valid reports whether every set bit lies below bitsRange.
func (p Pattern) Valid(bitsRange int) bool {
	if bitsRange < 1 || bitsRange > MaxBits {
		return false
	}
	if bitsRange == MaxBits {
		return true
	}
	return uint64(p) < (uint64(1) << bitsRange)
}

func (p Pattern) Raw() uint64 {
	return uint64(p)
}
