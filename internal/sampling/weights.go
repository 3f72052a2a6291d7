package sampling

// InitialWeight is the eligibility score every position starts with.
const InitialWeight = 100

// WeightTable tracks a decaying eligibility score per character position.
// A position becomes ineligible once its weight drops to zero or below.
type WeightTable struct {
	weights []int
}

func NewWeightTable(size int) *WeightTable {
	if size < 0 {
		size = 0
	}

	weights := make([]int, size)
	for i := range weights {
		weights[i] = InitialWeight
	}

	return &WeightTable{weights: weights}
}

func (t *WeightTable) Size() int {
	return len(t.weights)
}

// Weight returns the current score of a position, or zero when the position
// is outside the table.
func (t *WeightTable) Weight(pos int) int {
	if pos < 0 || pos >= len(t.weights) {
		return 0
	}
	return t.weights[pos]
}

// Penalize subtracts the drop amount from a position's weight. Weights may go
// negative; eligibility checks treat anything <= 0 as exhausted.
func (t *WeightTable) Penalize(pos, drop int) {
	if pos < 0 || pos >= len(t.weights) {
		return
	}
	t.weights[pos] -= drop
}

// Remaining returns the eligible positions in ascending order.
func (t *WeightTable) Remaining() []int {
	out := make([]int, 0, len(t.weights))
	for pos, w := range t.weights {
		if w > 0 {
			out = append(out, pos)
		}
	}

	return out
}
