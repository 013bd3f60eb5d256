package mining

import "fmt"

// InvalidWindowError reports a time-slot window that is out of range: a
// negative first slot, a non-positive count, or a window exceeding the
// dataset's time-slot count (spec §7).
type InvalidWindowError struct {
	First, Count, TimeSlotCount int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid time-slot window [%d, %d) over %d time slots", e.First, e.First+e.Count, e.TimeSlotCount)
}

// InvalidThresholdError reports a spatial- or time-prevalence threshold
// outside (0, 1] (spec §7).
type InvalidThresholdError struct {
	Name  string
	Value float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid %s threshold %g: must be in (0, 1]", e.Name, e.Value)
}

// EmptyDatasetError reports a dataset with no event types or no time slots
// (spec §7).
type EmptyDatasetError struct {
	Reason string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %s", e.Reason)
}
