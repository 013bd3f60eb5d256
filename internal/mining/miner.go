package mining

import (
	"github.com/integeruser/closedmdcop-miner/internal/instance"
	"github.com/integeruser/closedmdcop-miner/internal/neighbor"
	"github.com/integeruser/closedmdcop-miner/internal/pattern"
)

// DatasetView is the contract the Miner consumes its input dataset through
// (spec §6); *dataset.Dataset satisfies it structurally, but the core never
// imports the dataset package, keeping the mining engine free of any
// dependency beyond the standard library.
type DatasetView interface {
	ObjectsByEventType(eventType string) []*instance.Instance
	ObjectsByTimeSlot(slot instance.TimeSlot) []*instance.Instance
	TimeSlotCount() int
}

// Window is the inclusive-start, count-bounded time-slot range the Miner
// processes: slots first, first+1, ..., first+count-1. First is signed so
// an out-of-range negative window can be rejected instead of wrapping.
type Window struct {
	First int
	Count int
}

// Mine runs the level-wise Closed MDCOP mining algorithm (spec §4.6) over
// eventTypes for the given Window, using pred to test neighborhood between
// instances and the thresholds spt (spatial-prevalence) and tpt
// (time-prevalence). It returns a mapping from pattern size (>= 2) to the
// set of Closed MDCOPs of that size.
//
// All failure modes are precondition violations, checked before any mining
// work begins (spec §4.7); once mining starts the function cannot fail.
func Mine(eventTypes []string, ds DatasetView, window Window, pred neighbor.Predicate, spt, tpt float64) (map[int]PatternSet, error) {
	return mine(eventTypes, ds, window, pred, spt, tpt, true)
}

// mine is the validated entry point shared by Mine and the package's tests,
// which additionally exercise the pruneEarly=false path to cross-check
// that disabling TimePrevalence's early pruning yields identical final
// MDCOPs (spec §8 property 6, §9's open question).
func mine(eventTypes []string, ds DatasetView, window Window, pred neighbor.Predicate, spt, tpt float64, pruneEarly bool) (map[int]PatternSet, error) {
	if err := validate(eventTypes, ds, window, spt, tpt); err != nil {
		return nil, err
	}

	totalByEventType := make(map[string]int, len(eventTypes))
	for _, et := range eventTypes {
		totalByEventType[et] = len(ds.ObjectsByEventType(et))
	}

	slots := make([]instance.TimeSlot, window.Count)
	for i := range slots {
		slots[i] = instance.TimeSlot(window.First + i)
	}

	cmdp := map[int]PatternSet{1: singletonPatterns(eventTypes)}

	candidates := map[int]map[instance.TimeSlot]map[pattern.Pattern]pattern.SubPatterns{
		1: make(map[instance.TimeSlot]map[pattern.Pattern]pattern.SubPatterns, len(slots)),
	}
	for _, s := range slots {
		level1 := make(map[pattern.Pattern]pattern.SubPatterns, len(eventTypes))
		for _, et := range eventTypes {
			level1[pattern.Single(et)] = pattern.SubPatterns{}
		}
		candidates[1][s] = level1
	}

	tables := map[int]map[instance.TimeSlot]map[pattern.Pattern]*InstanceTable{
		1: make(map[instance.TimeSlot]map[pattern.Pattern]*InstanceTable, len(slots)),
	}
	for _, s := range slots {
		byType := make(map[string][]*instance.Instance)
		for _, o := range ds.ObjectsByTimeSlot(s) {
			et := string(o.EventType)
			byType[et] = append(byType[et], o)
		}
		level1 := make(map[pattern.Pattern]*InstanceTable, len(eventTypes))
		for _, et := range eventTypes {
			level1[pattern.Single(et)] = NewSingletonInstanceTable(byType[et])
		}
		tables[1][s] = level1
	}

	history := NewHistory()

	k := 1
	for len(cmdp[k]) > 0 {
		next := k + 1

		allCandidates := GenerateCandidates(cmdp[k].Slice())

		nextCandidates := make(map[instance.TimeSlot]map[pattern.Pattern]pattern.SubPatterns, len(slots))
		for _, s := range slots {
			survived := candidates[k][s]
			perSlot := make(map[pattern.Pattern]pattern.SubPatterns, len(allCandidates))
			for c, sp := range allCandidates {
				if _, ok := survived[sp.Left]; !ok {
					continue
				}
				if _, ok := survived[sp.Right]; !ok {
					continue
				}
				perSlot[c] = sp
			}
			nextCandidates[s] = perSlot
		}
		candidates[next] = nextCandidates

		initial := make(map[pattern.Pattern]pattern.SubPatterns)
		for _, perSlot := range nextCandidates {
			for c, sp := range perSlot {
				initial[c] = sp
			}
		}
		tp := NewTimePrevalenceTable(initial)

		nextTables := make(map[instance.TimeSlot]map[pattern.Pattern]*InstanceTable, len(slots))
		var mdp PatternSet

		for idx, s := range slots {
			perSlotCandidates := nextCandidates[s]

			joined := make(map[pattern.Pattern]*InstanceTable, len(perSlotCandidates))
			for c, sp := range perSlotCandidates {
				t1 := tables[k][s][sp.Left]
				t2 := tables[k][s][sp.Right]
				joined[c] = TableJoin(t1, t2, pred)
			}
			nextTables[s] = joined
			delete(tables[k], s)

			sp := SpatialPrevalence(joined, totalByEventType, spt, history)
			for c := range perSlotCandidates {
				if _, ok := sp[c]; !ok {
					delete(perSlotCandidates, c)
				}
			}

			UpdateTimeIndex(tp, sp, window.Count)
			mdp = PrunePrevalent(tp, tpt, window.Count, idx, pruneEarly)

			for _, future := range slots[idx+1:] {
				futureCandidates := nextCandidates[future]
				for c := range futureCandidates {
					if _, ok := tp[c]; !ok {
						delete(futureCandidates, c)
					}
				}
			}
		}

		tables[next] = nextTables
		cmdp[next] = mdp

		ClosureFilter(cmdp, next, history)

		k = next
	}

	delete(cmdp, 1)
	delete(cmdp, k)
	return cmdp, nil
}

func singletonPatterns(eventTypes []string) PatternSet {
	s := make(PatternSet, len(eventTypes))
	for _, et := range eventTypes {
		s[pattern.Single(et)] = struct{}{}
	}
	return s
}

func validate(eventTypes []string, ds DatasetView, window Window, spt, tpt float64) error {
	if len(eventTypes) == 0 {
		return &EmptyDatasetError{Reason: "no event types"}
	}
	timeSlotCount := ds.TimeSlotCount()
	if timeSlotCount == 0 {
		return &EmptyDatasetError{Reason: "no time slots"}
	}
	if window.First < 0 || window.Count <= 0 || window.First+window.Count > timeSlotCount {
		return &InvalidWindowError{First: window.First, Count: window.Count, TimeSlotCount: timeSlotCount}
	}
	if spt <= 0 || spt > 1 {
		return &InvalidThresholdError{Name: "spatial-prevalence", Value: spt}
	}
	if tpt <= 0 || tpt > 1 {
		return &InvalidThresholdError{Name: "time-prevalence", Value: tpt}
	}
	return nil
}
