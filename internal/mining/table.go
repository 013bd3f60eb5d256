// Package mining implements the level-wise Closed MDCOP mining engine:
// candidate generation, instance-table joins, spatial and time prevalence,
// and the closed-pattern filter. It is a pure, synchronous, in-memory
// computation with no dependency outside the standard library (see
// SPEC_FULL.md §10): every input — the dataset view and the neighbor
// predicate — is injected by the caller.
package mining

import (
	"sort"
	"strings"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
)

// Row is one row instance of a pattern: a prefix of Instances (one per
// EventType of the pattern but the last) plus the last Instance. Every pair
// of Instances in a row is a neighbor under the NeighborPredicate used to
// build it.
type Row struct {
	Prefix []*instance.Instance
	Last   *instance.Instance
}

// InstanceTable stores every row instance of one Pattern in one time slot as
// a `prefix -> set(last)` map, so TableJoin's inner loop only ever visits
// matching prefixes instead of scanning the whole table.
type InstanceTable struct {
	entries map[string]*tableEntry
}

type tableEntry struct {
	prefix []*instance.Instance
	lasts  []*instance.Instance
}

// NewInstanceTable returns an empty InstanceTable.
func NewInstanceTable() *InstanceTable {
	return &InstanceTable{entries: make(map[string]*tableEntry)}
}

// NewSingletonInstanceTable builds the InstanceTable for a singleton Pattern
// in one time slot: the empty prefix maps to every Instance of that type
// observed in that slot (see spec §3, "For singleton Patterns...").
func NewSingletonInstanceTable(objects []*instance.Instance) *InstanceTable {
	t := NewInstanceTable()
	for _, o := range objects {
		t.insertRaw(nil, o)
	}
	return t
}

// Insert records that `prefix ∪ {last}` is a row instance of the table's
// pattern. prefix must already be in canonical (sorted by EventType,ID)
// order; callers within this package always build it that way.
func (t *InstanceTable) Insert(prefix []*instance.Instance, last *instance.Instance) {
	t.insertRaw(prefix, last)
}

func (t *InstanceTable) insertRaw(prefix []*instance.Instance, last *instance.Instance) {
	key := prefixKey(prefix)
	e, ok := t.entries[key]
	if !ok {
		e = &tableEntry{prefix: prefix}
		t.entries[key] = e
	}
	for _, l := range e.lasts {
		if l == last {
			return
		}
	}
	e.lasts = append(e.lasts, last)
}

// Len reports the number of distinct prefix keys in the table.
func (t *InstanceTable) Len() int {
	return len(t.entries)
}

// Rows reports every row instance stored in the table, one Row per
// (prefix, last) pair.
func (t *InstanceTable) Rows() []Row {
	rows := make([]Row, 0, len(t.entries))
	for _, e := range t.entries {
		for _, last := range e.lasts {
			rows = append(rows, Row{Prefix: e.prefix, Last: last})
		}
	}
	return rows
}

// prefixKey returns the canonical map key for a prefix: Instances sorted by
// (EventType, ID) and joined by a separator that cannot appear in an
// EventType or integer ID rendering.
func prefixKey(prefix []*instance.Instance) string {
	if len(prefix) == 0 {
		return ""
	}
	sorted := make([]*instance.Instance, len(prefix))
	copy(sorted, prefix)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].EventType != sorted[j].EventType {
			return sorted[i].EventType < sorted[j].EventType
		}
		return sorted[i].ID < sorted[j].ID
	})

	var b strings.Builder
	for i, o := range sorted {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(string(o.EventType))
		b.WriteByte('\x1e')
		b.WriteString(o.String())
	}
	return b.String()
}

// withAppended returns a new, canonically sorted prefix consisting of
// prefix with inst appended. The input prefix is never mutated.
func withAppended(prefix []*instance.Instance, inst *instance.Instance) []*instance.Instance {
	out := make([]*instance.Instance, 0, len(prefix)+1)
	out = append(out, prefix...)
	out = append(out, inst)
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventType != out[j].EventType {
			return out[i].EventType < out[j].EventType
		}
		return out[i].ID < out[j].ID
	})
	return out
}
