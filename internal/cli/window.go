package cli

import (
	"fmt"
	"log"

	"github.com/integeruser/closedmdcop-miner/internal/mining"
)

// clampWindow reinstates src/main.cpp's window handling (SPEC_FULL.md §12):
// a count that runs past the dataset's last time slot is trimmed rather than
// rejected, but a first slot outside [0, timeSlotCount) is still an error, as
// is a dataset with no time slots at all.
func clampWindow(first, count, timeSlotCount int, logger *log.Logger) (mining.Window, error) {
	if timeSlotCount == 0 {
		return mining.Window{}, fmt.Errorf("dataset has no time slots")
	}
	if first < 0 || first >= timeSlotCount {
		return mining.Window{}, fmt.Errorf("window-first %d is out of range [0, %d)", first, timeSlotCount)
	}

	if count < 0 {
		count = timeSlotCount - first
	}
	if first+count > timeSlotCount {
		clamped := timeSlotCount - first
		if logger != nil {
			logger.Printf("clamping window-count %d to %d (dataset has %d time slots)", count, clamped, timeSlotCount)
		}
		count = clamped
	}
	if count <= 0 {
		return mining.Window{}, fmt.Errorf("window [%d, %d) is empty", first, first+count)
	}
	return mining.Window{First: first, Count: count}, nil
}
