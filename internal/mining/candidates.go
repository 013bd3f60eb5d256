package mining

import (
	"sort"

	"github.com/integeruser/closedmdcop-miner/internal/pattern"
)

// GenerateCandidates implements the Apriori-gen join+prune step (spec §4.1):
// given a set of size-k Patterns, it returns every size-(k+1) candidate
// pattern reachable by joining two size-k patterns that share their first
// k-1 EventTypes in canonical order, each mapped to the SubPatterns that
// produced it. A candidate survives the prune step only if all k+1 of its size-k
// subsets are present in lk.
//
// lk must contain patterns all of the same size; an empty lk yields an
// empty result.
func GenerateCandidates(lk []pattern.Pattern) map[pattern.Pattern]pattern.SubPatterns {
	candidates := make(map[pattern.Pattern]pattern.SubPatterns)
	if len(lk) == 0 {
		return candidates
	}

	sorted := make([]pattern.Pattern, len(lk))
	copy(sorted, lk)
	sort.Slice(sorted, func(i, j int) bool { return string(sorted[i]) < string(sorted[j]) })

	// join step
	for i, p := range sorted {
		pt := p.Types()
		for j := i; j < len(sorted); j++ {
			q := sorted[j]
			qt := q.Types()
			if len(pt) != len(qt) || len(pt) == 0 {
				continue
			}
			if !pattern.SamePrefix(p, q) {
				continue
			}
			if pt[len(pt)-1] < qt[len(qt)-1] {
				union := pattern.Union(p, q)
				candidates[union] = pattern.SubPatterns{Left: p, Right: q}
			}
		}
	}

	// prune step: a candidate of size k+1 has exactly k+1 subsets of size k;
	// all of them must be present in lk for the candidate to survive.
	for c := range candidates {
		existing := 0
		for _, prev := range sorted {
			if prev.IsSubsetOf(c) {
				existing++
			}
		}
		if existing < c.Size() {
			delete(candidates, c)
		}
	}

	return candidates
}
