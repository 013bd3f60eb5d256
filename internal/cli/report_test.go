package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/integeruser/closedmdcop-miner/internal/dataset"
	"github.com/integeruser/closedmdcop-miner/internal/mining"
	"github.com/integeruser/closedmdcop-miner/internal/pattern"
)

func TestPrintDatasetSummaryListsEventTypesAndCounts(t *testing.T) {
	s := dataset.Summary{
		ObjectCount:       5,
		EventTypes:        []string{"A", "B"},
		ObjectCountByType: map[string]int{"A": 3, "B": 2},
		TimeSlotCount:     4,
	}
	var buf bytes.Buffer
	printDatasetSummary(&buf, s)

	out := buf.String()
	for _, want := range []string{"5 objects", "2 event types", "4 time slots", "A: 3 objects", "B: 2 objects"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintResultsGroupsBySizeAndSkipsSingletons(t *testing.T) {
	cmdp := map[int]mining.PatternSet{
		1: mining.NewPatternSet(pattern.Single("A")),
		2: mining.NewPatternSet(pattern.New("A", "B")),
	}
	var buf bytes.Buffer
	printResults(&buf, cmdp)

	out := buf.String()
	if strings.Contains(out, "size 1") {
		t.Error("singleton level should not be printed")
	}
	if !strings.Contains(out, "size 2: 1 closed MDCOPs") {
		t.Errorf("missing size-2 summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "total: 1 closed MDCOPs") {
		t.Errorf("missing total line, got:\n%s", out)
	}
}

func TestPrintResultsEmptyStillPrintsZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, map[int]mining.PatternSet{})
	if !strings.Contains(buf.String(), "total: 0 closed MDCOPs") {
		t.Errorf("expected zero total, got:\n%s", buf.String())
	}
}
