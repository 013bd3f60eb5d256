package mining

import (
	"math"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
	"github.com/integeruser/closedmdcop-miner/internal/pattern"
)

// PatternSet is a set of Patterns, used throughout the miner for candidate
// and MDCOP collections. Patterns are comparable strings, so a plain map
// is the natural Go set representation.
type PatternSet map[pattern.Pattern]struct{}

// NewPatternSet builds a PatternSet from the given Patterns.
func NewPatternSet(ps ...pattern.Pattern) PatternSet {
	s := make(PatternSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Slice returns the Patterns of s as a slice, in no particular order.
func (s PatternSet) Slice() []pattern.Pattern {
	out := make([]pattern.Pattern, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// SpatialPrevalence computes, for one time slot, the set of spatial-
// prevalent Patterns among those with an InstanceTable in tables (spec
// §4.3). totalByEventType gives the denominator for participation ratios:
// the total number of Instances of each EventType across the whole
// dataset, not just this time slot. history receives one new entry per
// Pattern present in tables, in call order.
func SpatialPrevalence(tables map[pattern.Pattern]*InstanceTable, totalByEventType map[string]int, spt float64, history *History) PatternSet {
	sp := make(PatternSet)

	for p, table := range tables {
		idsByType := make(map[string]map[instance.ID]struct{})
		for _, row := range table.Rows() {
			for _, o := range row.Prefix {
				recordID(idsByType, o)
			}
			recordID(idsByType, row.Last)
		}

		index := participationIndex(idsByType, totalByEventType)
		history.Append(p, index)
		if index >= spt {
			sp[p] = struct{}{}
		}
	}

	return sp
}

func recordID(idsByType map[string]map[instance.ID]struct{}, o *instance.Instance) {
	eventType := string(o.EventType)
	ids, ok := idsByType[eventType]
	if !ok {
		ids = make(map[instance.ID]struct{})
		idsByType[eventType] = ids
	}
	ids[o.ID] = struct{}{}
}

// participationIndex returns the minimum participation ratio over the
// event types observed in idsByType, or 0 when idsByType is empty (spec's
// recommended sentinel rule for an empty InstanceTable, documented in
// SPEC_FULL.md §14).
func participationIndex(idsByType map[string]map[instance.ID]struct{}, totalByEventType map[string]int) float64 {
	if len(idsByType) == 0 {
		return 0
	}

	index := math.Inf(1)
	for eventType, ids := range idsByType {
		total := totalByEventType[eventType]
		ratio := float64(len(ids)) / float64(total)
		if ratio < index {
			index = ratio
		}
	}
	return index
}
