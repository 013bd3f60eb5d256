package mining

import "github.com/integeruser/closedmdcop-miner/internal/pattern"

// NewTimePrevalenceTable initializes the mutable time-prevalence
// accumulator tp for a new level: one entry per candidate, all starting at
// 0 (spec §4.4).
func NewTimePrevalenceTable(candidates map[pattern.Pattern]pattern.SubPatterns) map[pattern.Pattern]float64 {
	tp := make(map[pattern.Pattern]float64, len(candidates))
	for p := range candidates {
		tp[p] = 0
	}
	return tp
}

// UpdateTimeIndex increments tp[p] by 1/totalTimeSlots for every Pattern p
// that was spatial-prevalent this slot and is still tracked in tp (spec
// §4.4's find_time_index step).
func UpdateTimeIndex(tp map[pattern.Pattern]float64, sp PatternSet, totalTimeSlots int) {
	for p := range sp {
		if _, ok := tp[p]; ok {
			tp[p] += 1.0 / float64(totalTimeSlots)
		}
	}
}

// PrunePrevalent applies the early-pruning rule of spec §4.4 after
// UpdateTimeIndex has run for the time slot at 0-based index timeSlotIndex
// out of totalTimeSlots, and returns the set of Patterns still plausible as
// MDCOPs: either already time-prevalent, or still able to reach tpt given
// the remaining time slots.
//
// Patterns that can never reach tpt are, when pruneEarly is true, removed
// from tp so later slots no longer carry them; when pruneEarly is false
// they are left in tp (for the cross-check described in spec §9's open
// question) but still excluded from the returned set, since the inequality
// that makes them hopeless only gets more pessimistic as remaining shrinks.
func PrunePrevalent(tp map[pattern.Pattern]float64, tpt float64, totalTimeSlots, timeSlotIndex int, pruneEarly bool) PatternSet {
	remaining := totalTimeSlots - timeSlotIndex - 1
	mdp := make(PatternSet)

	for p, v := range tp {
		if v >= tpt {
			mdp[p] = struct{}{}
			continue
		}

		maxPossible := v + float64(remaining)/float64(totalTimeSlots)
		if maxPossible >= tpt {
			mdp[p] = struct{}{}
			continue
		}

		if pruneEarly {
			delete(tp, p)
		}
	}

	return mdp
}
