package sampling

import "sort"

// Sample draws the position subset for one pattern from the table.
//
// The subset size is uniform in [min, k] where k caps max at the number of
// eligible positions. When even min cannot be met the result is nil — the
// defined exhaustion signal, not an error. Every drawn position is penalized
// by drop, so the mutation is visible to later calls on the same table.
// Positions are drawn without replacement and returned ascending.
func Sample(t *WeightTable, min, max, drop int, src Source) []int {
	candidates := t.Remaining()

	k := max
	if len(candidates) < k {
		k = len(candidates)
	}
	if k < min {
		return nil
	}

	target := min + src.IntN(k-min+1)

	picked := make([]int, 0, target)
	for i := 0; i < target; i++ {
		idx := src.IntN(len(candidates))
		pos := candidates[idx]

		t.Penalize(pos, drop)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
		picked = append(picked, pos)
	}

	sort.Ints(picked)
	return picked
}
