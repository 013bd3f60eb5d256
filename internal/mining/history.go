package mining

import "github.com/integeruser/closedmdcop-miner/internal/pattern"

// History is the ParticipationIndexHistory of spec §3: for every Pattern
// that has ever been generated as a candidate, the participation-index
// value recorded for each processed time slot, in time-slot order. It is
// the evidence ClosureFilter compares across pattern sizes.
type History struct {
	values map[pattern.Pattern][]float64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{values: make(map[pattern.Pattern][]float64)}
}

// Append records idx as the next participation-index value for p.
func (h *History) Append(p pattern.Pattern, idx float64) {
	h.values[p] = append(h.values[p], idx)
}

// Of returns the recorded participation-index history for p, in time-slot
// order. The returned slice must not be mutated by the caller.
func (h *History) Of(p pattern.Pattern) []float64 {
	return h.values[p]
}

// Equal reports whether p and q have recorded identical participation-index
// histories: same length, exact element-wise equality (spec §4.5 — no
// tolerance, since both histories are produced by the same arithmetic over
// the same inputs).
func (h *History) Equal(p, q pattern.Pattern) bool {
	a, b := h.values[p], h.values[q]
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
