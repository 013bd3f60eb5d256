// Package dataset loads the line-based dataset text format into the
// indexed view the mining engine's Miner consumes as a Dataset view (see
// spec §6): instances grouped by event type and by time slot.
package dataset

import (
	"fmt"
	"sort"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
)

// Dataset is the parsed, indexed collection of instances the mining engine
// reads its inputs from. It is built once and never mutated afterwards.
type Dataset struct {
	eventTypes  map[string]struct{}
	byEventType map[string][]*instance.Instance
	byTimeSlot  map[instance.TimeSlot][]*instance.Instance
	timeSlots   []instance.TimeSlot // sorted, unique
}

// EventTypes returns the set of distinct event types observed in the
// dataset.
func (d *Dataset) EventTypes() []string {
	out := make([]string, 0, len(d.eventTypes))
	for t := range d.eventTypes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ObjectsByEventType returns every instance of the given event type,
// regardless of time slot.
func (d *Dataset) ObjectsByEventType(eventType string) []*instance.Instance {
	return d.byEventType[eventType]
}

// ObjectsByTimeSlot returns every instance observed in the given time slot,
// regardless of event type.
func (d *Dataset) ObjectsByTimeSlot(slot instance.TimeSlot) []*instance.Instance {
	return d.byTimeSlot[slot]
}

// TimeSlots returns the distinct time slots present in the dataset, sorted
// ascending.
func (d *Dataset) TimeSlots() []instance.TimeSlot {
	return d.timeSlots
}

// TimeSlotCount returns the number of distinct time slots in the dataset.
func (d *Dataset) TimeSlotCount() int {
	return len(d.timeSlots)
}

// ObjectCount returns the total number of instances in the dataset.
func (d *Dataset) ObjectCount() int {
	n := 0
	for _, objs := range d.byEventType {
		n += len(objs)
	}
	return n
}

// Summary is a snapshot of dataset statistics, reinstating the original
// implementation's print_dataset_info report (see SPEC_FULL.md §12).
type Summary struct {
	ObjectCount           int
	EventTypes            []string
	ObjectCountByType     map[string]int
	TimeSlotCount         int
	ObjectCountByTimeSlot map[instance.TimeSlot]int
}

// Summarize computes a Summary for d.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		ObjectCount:           d.ObjectCount(),
		EventTypes:            d.EventTypes(),
		ObjectCountByType:     make(map[string]int, len(d.byEventType)),
		TimeSlotCount:         d.TimeSlotCount(),
		ObjectCountByTimeSlot: make(map[instance.TimeSlot]int, len(d.byTimeSlot)),
	}
	for t, objs := range d.byEventType {
		s.ObjectCountByType[t] = len(objs)
	}
	for slot, objs := range d.byTimeSlot {
		s.ObjectCountByTimeSlot[slot] = len(objs)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("objects=%d event_types=%v time_slots=%d", s.ObjectCount, s.EventTypes, s.TimeSlotCount)
}
