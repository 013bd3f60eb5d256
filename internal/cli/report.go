package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/integeruser/closedmdcop-miner/internal/dataset"
	"github.com/integeruser/closedmdcop-miner/internal/mining"
)

// printDatasetSummary reinstates src/dataset.cpp's print_dataset_info
// (SPEC_FULL.md §12): object count, event types, per-type counts, and
// time-slot count, printed once before mining starts.
func printDatasetSummary(w io.Writer, s dataset.Summary) {
	fmt.Fprintf(w, "dataset: %d objects across %d event types, %d time slots\n",
		s.ObjectCount, len(s.EventTypes), s.TimeSlotCount)
	for _, et := range s.EventTypes {
		fmt.Fprintf(w, "  %s: %d objects\n", et, s.ObjectCountByType[et])
	}
}

// printResults reinstates src/main.cpp's trailing loop printing cmdp by
// size: every Closed MDCOP found, grouped by pattern size in ascending
// order, each size's patterns sorted for deterministic output.
func printResults(w io.Writer, cmdp map[int]mining.PatternSet) {
	sizes := make([]int, 0, len(cmdp))
	for size := range cmdp {
		if size < 2 {
			continue // singletons are not co-occurrence patterns
		}
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	total := 0
	for _, size := range sizes {
		patterns := cmdp[size].Slice()
		sort.Slice(patterns, func(i, j int) bool { return patterns[i] < patterns[j] })
		fmt.Fprintf(w, "size %d: %d closed MDCOPs\n", size, len(patterns))
		for _, p := range patterns {
			fmt.Fprintf(w, "  %s\n", p)
		}
		total += len(patterns)
	}
	fmt.Fprintf(w, "total: %d closed MDCOPs\n", total)
}
