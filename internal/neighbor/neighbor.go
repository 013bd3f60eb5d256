// Package neighbor provides the spatial adjacency predicate the mining
// engine treats as an abstract capability: given two instances, are they
// close enough to be considered neighbors?
package neighbor

import "github.com/integeruser/closedmdcop-miner/internal/instance"

// Predicate decides whether two instances are neighbors. Implementations
// must be pure and deterministic: same inputs, same answer, no side effects,
// safe to call concurrently from many goroutines.
type Predicate interface {
	Neighbors(a, b *instance.Instance) bool
}
