// Package instance defines the immutable point-events the mining engine
// reasons about: event-typed, spatially-located, timestamped objects.
package instance

import "fmt"

// EventType is an opaque, totally ordered label for a class of events (e.g.
// "A", "deer", "poacher"). Ordering is the natural string order, which also
// fixes the canonical ordering used throughout package pattern.
type EventType string

// ID is an identifier unique within a given EventType. IDs are assigned
// consecutively starting at 0 in dataset line order; see package dataset.
type ID uint32

// TimeSlot is a non-negative discrete time bucket.
type TimeSlot uint32

// Instance is an immutable point-like event: a type, an id unique within
// that type, two spatial coordinates, and the time slot it was observed in.
// Two Instances are identity-equal iff (EventType, ID) matches; X/Y/TimeSlot
// never factor into equality or hashing. Instances are created once by the
// dataset loader and shared by reference across every InstanceTable that
// references them — the mining engine never copies or mutates one.
type Instance struct {
	EventType EventType
	ID        ID
	X, Y      float64
	TimeSlot  TimeSlot
}

// Key uniquely identifies an Instance within the dataset and is cheap to use
// as a map key, independent of the Instance's coordinates.
type Key struct {
	EventType EventType
	ID        ID
}

// Key returns the identity key for this Instance.
func (o *Instance) Key() Key {
	return Key{EventType: o.EventType, ID: o.ID}
}

func (o *Instance) String() string {
	return fmt.Sprintf("<%s%d>", o.EventType, o.ID)
}
