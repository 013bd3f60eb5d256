package neighbor

import "github.com/integeruser/closedmdcop-miner/internal/instance"

// Euclidean is a Predicate that treats (X, Y) as planar Cartesian
// coordinates and compares squared distance against a squared threshold,
// avoiding a sqrt per comparison.
type Euclidean struct {
	squaredThreshold float64
}

// NewEuclidean builds a Euclidean predicate for the given distance
// threshold dt (dt > 0).
func NewEuclidean(dt float64) *Euclidean {
	return &Euclidean{squaredThreshold: dt * dt}
}

// Neighbors reports whether a and b are within dt of each other in the
// plane.
func (e *Euclidean) Neighbors(a, b *instance.Instance) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= e.squaredThreshold
}
