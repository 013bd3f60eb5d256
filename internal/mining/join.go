package mining

import "github.com/integeruser/closedmdcop-miner/internal/neighbor"

// TableJoin joins two InstanceTables of size-k patterns that share a
// SubPatterns prefix structure into the InstanceTable of their size-(k+1)
// union pattern (spec §4.2). For every prefix key present in both tables,
// every instance on the left side is paired with every instance on the
// right side sharing that prefix; a pair becomes a new row, keyed by the
// left instance appended to the prefix, iff they are neighbors.
//
// Matching is done through the tables' own prefix maps, so the join never
// performs an O(|t1|*|t2|) scan across the whole tables, only across
// matching prefixes, as required by the complexity note in spec §4.2.
func TableJoin(t1, t2 *InstanceTable, pred neighbor.Predicate) *InstanceTable {
	out := NewInstanceTable()

	for key, e1 := range t1.entries {
		e2, ok := t2.entries[key]
		if !ok {
			continue
		}
		for _, a := range e1.lasts {
			for _, b := range e2.lasts {
				if !pred.Neighbors(a, b) {
					continue
				}
				newPrefix := withAppended(e1.prefix, a)
				out.Insert(newPrefix, b)
			}
		}
	}

	return out
}
